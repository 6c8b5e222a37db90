package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/cibil/pkg/score"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var (
	onTimePercentFlag = &cli.Float64Flag{
		Name:  "on-time-percent",
		Usage: "Percent of payments made on time (0-100)",
	}

	daysLateAvgFlag = &cli.Float64Flag{
		Name:  "days-late-avg",
		Usage: "Average days late across late payments (optional, default: 0)",
	}

	utilizationFlag = &cli.Float64Flag{
		Name:  "utilization-percent",
		Usage: "Credit utilization percent (optional, default: 0)",
	}

	creditAgeFlag = &cli.Float64Flag{
		Name:  "credit-age-years",
		Usage: "Age of the oldest credit line in years (optional, default: 0)",
	}

	securedLoansFlag = &cli.IntFlag{
		Name:  "secured-loans",
		Usage: "Number of secured loans (optional, default: 0)",
	}

	unsecuredLoansFlag = &cli.IntFlag{
		Name:  "unsecured-loans",
		Usage: "Number of unsecured loans (optional, default: 0)",
	}

	creditCardFlag = &cli.BoolFlag{
		Name:  "credit-card",
		Usage: "Borrower has at least one credit card (optional, default: false)",
	}

	inquiriesFlag = &cli.IntFlag{
		Name:  "inquiries-6m",
		Usage: "Number of credit inquiries in the trailing 6 months (optional, default: 0)",
	}

	newAccountsFlag = &cli.IntFlag{
		Name:  "new-accounts-6m",
		Usage: "Number of new accounts opened in the trailing 6 months (optional, default: 0)",
	}

	attributesFileFlag = &cli.StringFlag{
		Name:  "file",
		Usage: "Path to a YAML file with borrower attributes (flags override file values)",
	}

	attributeFlags = []cli.Flag{
		onTimePercentFlag,
		daysLateAvgFlag,
		utilizationFlag,
		creditAgeFlag,
		securedLoansFlag,
		unsecuredLoansFlag,
		creditCardFlag,
		inquiriesFlag,
		newAccountsFlag,
		attributesFileFlag,
	}

	scoreCmd = &cli.Command{
		Name:    "score",
		Aliases: []string{"s"},
		Usage:   "Compute the credit score and contribution breakdown",
		UsageText: `cibil score --on-time-percent 95 --days-late-avg 5 --utilization-percent 25 \
   --credit-age-years 3 --secured-loans 1 --unsecured-loans 1 --credit-card \
   --inquiries-6m 1`,
		Action: cmdScore,
		Flags:  attributeFlags,
	}
)

func cmdScore(c *cli.Context) error {
	attrs, err := getAttributes(c)
	if err != nil {
		return err
	}
	if attrs == nil {
		return cli.ShowSubcommandHelp(c)
	}

	res, err := model.Calculate(*attrs)
	if err != nil {
		return fmt.Errorf("failed to calculate score: %w", err)
	}

	slog.Debug("score computed", "score", res.Score)
	for _, con := range res.Contributions {
		slog.Debug("component contribution",
			"component", con.Component,
			"points", fmt.Sprintf("%.2f", con.Points))
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	return nil
}

// getAttributes assembles borrower attributes from the optional file and
// the command flags; flags win over file values. A nil result with no
// error means no input was provided at all.
func getAttributes(c *cli.Context) (*score.Attributes, error) {
	attrs := &score.Attributes{}

	file := c.String(attributesFileFlag.Name)
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading attributes file %s: %w", file, err)
		}
		if err := yaml.Unmarshal(b, attrs); err != nil {
			return nil, fmt.Errorf("error parsing attributes file %s: %w", file, err)
		}
	} else if !c.IsSet(onTimePercentFlag.Name) {
		return nil, nil
	}

	if c.IsSet(onTimePercentFlag.Name) {
		attrs.OnTimePaymentsPercent = c.Float64(onTimePercentFlag.Name)
	}
	if c.IsSet(daysLateAvgFlag.Name) {
		attrs.DaysLateAvg = c.Float64(daysLateAvgFlag.Name)
	}
	if c.IsSet(utilizationFlag.Name) {
		attrs.UtilizationPercent = c.Float64(utilizationFlag.Name)
	}
	if c.IsSet(creditAgeFlag.Name) {
		attrs.CreditAgeYears = c.Float64(creditAgeFlag.Name)
	}
	if c.IsSet(securedLoansFlag.Name) {
		attrs.NumSecuredLoans = c.Int(securedLoansFlag.Name)
	}
	if c.IsSet(unsecuredLoansFlag.Name) {
		attrs.NumUnsecuredLoans = c.Int(unsecuredLoansFlag.Name)
	}
	if c.IsSet(creditCardFlag.Name) {
		attrs.HasCreditCard = c.Bool(creditCardFlag.Name)
	}
	if c.IsSet(inquiriesFlag.Name) {
		attrs.NumInquiries6Months = c.Int(inquiriesFlag.Name)
	}
	if c.IsSet(newAccountsFlag.Name) {
		attrs.NumNewAccounts6Months = c.Int(newAccountsFlag.Name)
	}

	return attrs, nil
}
