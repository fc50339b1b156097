package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/report"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/google/subcommands"
)

type rentCmd struct {
	property models.Property
	seed     int64
}

func (*rentCmd) Name() string     { return "rent" }
func (*rentCmd) Synopsis() string { return "estimate the monthly market rent of a property" }
func (*rentCmd) Usage() string {
	return `underwrite rent -address <address> -price <amount> [-sqft n] [-type single_family|condo|townhouse]
`
}

func (c *rentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property.Address, "address", "", "Street address, including city and state.")
	f.Float64Var(&c.property.PurchasePrice, "price", 0, "Purchase price.")
	f.IntVar(&c.property.SquareFootage, "sqft", 0, "Living area in square feet.")
	f.StringVar(&c.property.PropertyType, "type", "single_family", "Property type.")
	f.Int64Var(&c.seed, "seed", 42, "Seed for the estimate.")
}

func (c *rentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := underwriting.ValidateProperty(c.property); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	fmt.Println(report.USD(underwriting.EstimateRent(c.property, c.seed)))
	return subcommands.ExitSuccess
}
