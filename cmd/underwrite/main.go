// Command underwrite analyzes rental properties from YAML files without a
// database or HTTP server.
package main

import (
	"context"
	"flag"
	"os"
	"path"
	"time"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var assumptionsFile = flag.String("assumptions", os.Getenv("ASSUMPTIONS_FILE"), "Path to a YAML rate table overriding the defaults")
var catalogFile = flag.String("catalog", os.Getenv("CATALOG_FILE"), "Path to a YAML optimization action catalog")
var verbose = flag.Bool("v", false, "Log debug output to stderr")

var logger = logrus.New()

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&analyzeCmd{}, "underwriting")
	commander.Register(&scheduleCmd{}, "underwriting")
	commander.Register(&rentCmd{}, "underwriting")

	flag.Parse()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// loadAssumptions returns the rate table selected by the global flags
func loadAssumptions() (models.FinancialAssumptions, error) {
	return config.LoadAssumptions(*assumptionsFile, time.Now().Year())
}
