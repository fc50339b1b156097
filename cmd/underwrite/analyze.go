package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/report"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type analyzeCmd struct {
	format   string
	workers  int
	estimate bool
	seed     int64
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "underwrite every property of a portfolio file"
}
func (*analyzeCmd) Usage() string {
	return `underwrite analyze [-format text|json|xml] [-workers n] [-estimate-rent] <portfolio.yaml>

  Computes financing, expenses, returns, scenarios, an optimization plan, risk
  and a verdict for each property of the file, then a portfolio summary.
  Properties that fail validation are reported and skipped.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "Output format (text, json, xml).")
	f.IntVar(&c.workers, "workers", 4, "Number of properties analyzed in parallel.")
	f.BoolVar(&c.estimate, "estimate-rent", false, "Estimate market rent for properties that do not list one.")
	f.Int64Var(&c.seed, "seed", 42, "Seed for rent estimation.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one portfolio file")
		return subcommands.ExitUsageError
	}
	switch c.format {
	case "text", "json", "xml":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	portfolio, err := config.LoadPortfolio(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	assumptions, err := loadAssumptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	catalog, err := config.LoadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	jobs := make([]underwriting.Job, len(portfolio.Properties))
	for i, p := range portfolio.Properties {
		if p.ID == "" {
			p.ID = fmt.Sprintf("property-%d", i+1)
		}
		if c.estimate && p.EstimatedRent == 0 {
			p.EstimatedRent = underwriting.EstimateRent(p, c.seed)
			logger.WithFields(logrus.Fields{"property_id": p.ID, "rent": p.EstimatedRent}).Debug("Estimated market rent")
		}
		jobCatalog := catalog
		if jobCatalog == nil {
			jobCatalog = underwriting.DefaultCatalog(p, underwriting.ComputeExpenses(p, p.PurchasePrice, assumptions))
		}
		jobs[i] = underwriting.Job{Property: p, Assumptions: assumptions, Requirement: portfolio.Requirement, Catalog: jobCatalog}
	}

	results, err := underwriting.AnalyzeBatch(ctx, jobs, c.workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var analyses []models.Analysis
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.WithField("property_id", r.PropertyID).Warnf("Skipping property: %v", r.Err)
			continue
		}
		analyses = append(analyses, *r.Analysis)
	}

	if err := c.write(analyses); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *analyzeCmd) write(analyses []models.Analysis) error {
	summary := underwriting.Summarize(analyses)
	switch c.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{"analyses": analyses, "portfolio": summary})
	case "xml":
		for i := range analyses {
			data, err := report.ExportXML(&analyses[i])
			if err != nil {
				return err
			}
			os.Stdout.Write(data)
		}
		return nil
	}
	for i := range analyses {
		fmt.Println(report.Summary(&analyses[i]))
	}
	fmt.Print(report.Portfolio(summary))
	return nil
}
