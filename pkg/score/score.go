// Package score implements a bounded creditworthiness score from a small
// set of borrower attributes: five weighted sub-scores (payment history,
// utilization, credit age, credit mix, new credit) combined into a final
// score in [MinScore, MaxScore]. The computation is pure and allocates
// only call-scoped data.
package score

// Attributes is the raw borrower input. Zero values are the documented
// defaults; only OnTimePaymentsPercent is meaningful to require.
type Attributes struct {
	OnTimePaymentsPercent float64 `json:"on_time_payments_percent" yaml:"onTimePaymentsPercent"`
	DaysLateAvg           float64 `json:"days_late_avg" yaml:"daysLateAvg"`
	UtilizationPercent    float64 `json:"utilization_percent" yaml:"utilizationPercent"`
	CreditAgeYears        float64 `json:"credit_age_years" yaml:"creditAgeYears"`
	NumSecuredLoans       int     `json:"num_secured_loans" yaml:"numSecuredLoans"`
	NumUnsecuredLoans     int     `json:"num_unsecured_loans" yaml:"numUnsecuredLoans"`
	HasCreditCard         bool    `json:"has_credit_card" yaml:"hasCreditCard"`
	NumInquiries6Months   int     `json:"num_inquiries_6_months" yaml:"numInquiries6Months"`
	NumNewAccounts6Months int     `json:"num_new_accounts_6_months" yaml:"numNewAccounts6Months"`
}

// Result is the final score with its per-component breakdown, in fixed
// component order.
type Result struct {
	Score         int            `json:"score" yaml:"score"`
	Contributions []Contribution `json:"contributions" yaml:"contributions"`
}

// Calculate computes the score for the given attributes. It evaluates the
// five sub-scores in fixed order and delegates to Aggregate. Since all
// five components are always assembled, the aggregator's
// missing-component error cannot occur on this path; the error return
// exists for signature symmetry with direct Aggregate use.
func (m Model) Calculate(attrs Attributes) (Result, error) {
	components := ComponentScores{
		PaymentHistory:    m.PaymentHistoryScore(attrs.OnTimePaymentsPercent, attrs.DaysLateAvg),
		CreditUtilization: m.UtilizationScore(attrs.UtilizationPercent),
		CreditAge:         m.CreditAgeScore(attrs.CreditAgeYears),
		CreditMix:         m.CreditMixScore(attrs.NumSecuredLoans, attrs.NumUnsecuredLoans, attrs.HasCreditCard),
		NewCredit:         m.NewCreditScore(attrs.NumInquiries6Months, attrs.NumNewAccounts6Months),
	}

	final, contributions, err := m.Aggregate(components)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Score:         final,
		Contributions: contributions,
	}, nil
}
