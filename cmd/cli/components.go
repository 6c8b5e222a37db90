package main

import (
	"fmt"

	"github.com/mchmarny/cibil/pkg/score"
	"github.com/urfave/cli/v2"
)

var (
	componentsCmd = &cli.Command{
		Name:    "components",
		Aliases: []string{"c"},
		Usage:   "Show the raw sub-scores before weighting",
		Action:  cmdComponents,
		Flags:   attributeFlags,
	}
)

type componentScore struct {
	Component score.Component `json:"component" yaml:"component"`
	Score     float64         `json:"score" yaml:"score"`
}

func cmdComponents(c *cli.Context) error {
	attrs, err := getAttributes(c)
	if err != nil {
		return err
	}
	if attrs == nil {
		return cli.ShowSubcommandHelp(c)
	}

	list := []componentScore{
		{score.PaymentHistory, model.PaymentHistoryScore(attrs.OnTimePaymentsPercent, attrs.DaysLateAvg)},
		{score.CreditUtilization, model.UtilizationScore(attrs.UtilizationPercent)},
		{score.CreditAge, model.CreditAgeScore(attrs.CreditAgeYears)},
		{score.CreditMix, model.CreditMixScore(attrs.NumSecuredLoans, attrs.NumUnsecuredLoans, attrs.HasCreditCard)},
		{score.NewCredit, model.NewCreditScore(attrs.NumInquiries6Months, attrs.NumNewAccounts6Months)},
	}

	if err := encode(list); err != nil {
		return fmt.Errorf("error encoding components: %w", err)
	}

	return nil
}
