package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Dan9191/underwriting-service/internal/report"
	"github.com/Dan9191/underwriting-service/internal/underwriting"
	"github.com/google/subcommands"
)

type scheduleCmd struct {
	price float64
	rate  float64
	years int
	down  float64
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the amortization schedule of a purchase" }
func (*scheduleCmd) Usage() string {
	return `underwrite schedule -price <amount> [-rate r] [-years n] [-down fraction]

  Prints the loan terms and the month-by-month amortization table. Flags left
  at zero use the rate table.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Purchase price.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, e.g. 0.065.")
	f.IntVar(&c.years, "years", 0, "Loan term in years.")
	f.Float64Var(&c.down, "down", 0, "Down payment as a fraction of the price.")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadAssumptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.rate > 0 {
		a.InterestRate = c.rate
	}
	if c.years > 0 {
		a.LoanTermYears = c.years
	}
	if c.down > 0 {
		a.DownPaymentFraction = c.down
	}

	loan, err := underwriting.ComputeLoan(c.price, a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Loan amount: %s, monthly payment: %s, cash invested: %s\n",
		report.USD(loan.LoanAmount), report.USD(loan.MonthlyPayment), report.USD(loan.CashInvested))
	fmt.Print(report.Schedule(loan))
	return subcommands.ExitSuccess
}
