package score

import "math"

// PaymentHistoryScore maps on-time payment rate and average lateness to a
// sub-score. The base is the on-time fraction; any average lateness applies
// a saturating penalty that tops out at a 50% reduction once the average
// reaches 90 days. There is no upper clamp on this path in the default
// model, so an on-time percent above 100 escapes above 1.0.
func (m Model) PaymentHistoryScore(onTimePercent, daysLateAvg float64) float64 {
	s := onTimePercent / 100

	if daysLateAvg > 0 {
		latePenalty := math.Min(daysLateAvg/90, 1)
		s *= 1 - latePenalty*0.5
	}

	return m.normalize(s)
}

// UtilizationScore maps credit utilization percent to a sub-score using
// inclusive upper-bound buckets. Deliberately non-monotonic: the 10-30%
// band scores above near-zero utilization.
func (m Model) UtilizationScore(utilizationPercent float64) float64 {
	var s float64
	switch {
	case utilizationPercent <= 10:
		s = 0.95
	case utilizationPercent <= 30:
		s = 1.0
	case utilizationPercent <= 50:
		s = 0.85
	case utilizationPercent <= 75:
		s = 0.60
	default:
		s = 0.30
	}
	return m.normalize(s)
}

// CreditAgeScore maps credit history tenure in years to a sub-score.
// Thresholds are checked descending so the highest applicable tier wins.
func (m Model) CreditAgeScore(years float64) float64 {
	var s float64
	switch {
	case years >= 5:
		s = 1.0
	case years >= 3:
		s = 0.85
	case years >= 1:
		s = 0.70
	default:
		s = 0.40
	}
	return m.normalize(s)
}

// CreditMixScore scores product diversity. No products at all returns a
// floor of 0.30 (no history is not maximally bad). Otherwise each loan
// type counts up to 2 products and the sum is capped at 1.0; the cap is
// load-bearing since the formula maxes out at 1.2.
func (m Model) CreditMixScore(numSecuredLoans, numUnsecuredLoans int, hasCreditCard bool) float64 {
	card := 0.0
	if hasCreditCard {
		card = 1
	}

	if numSecuredLoans+numUnsecuredLoans+int(card) == 0 {
		return m.normalize(0.30)
	}

	diversity := math.Min(float64(numSecuredLoans), 2)*0.3 +
		math.Min(float64(numUnsecuredLoans), 2)*0.2 +
		card*0.2

	return m.normalize(math.Min(diversity, 1.0))
}

// NewCreditScore penalizes recent credit-seeking over a trailing 6-month
// window. Inquiry and new-account penalties each cap at 0.60 and do not
// stack; only the worse of the two applies.
func (m Model) NewCreditScore(numInquiries6Months, numNewAccounts6Months int) float64 {
	inquiryPenalty := math.Min(float64(numInquiries6Months)*0.15, 0.60)
	newAccountPenalty := math.Min(float64(numNewAccounts6Months)*0.20, 0.60)

	return m.normalize(1.0 - math.Max(inquiryPenalty, newAccountPenalty))
}
