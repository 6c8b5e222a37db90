package score

import (
	"fmt"
	"math"
)

const (
	weightSumTolerance = 1e-9
)

// Component identifies one of the five fixed scoring factors.
type Component string

const (
	PaymentHistory    Component = "payment_history"
	CreditUtilization Component = "credit_utilization"
	CreditAge         Component = "credit_age"
	CreditMix         Component = "credit_mix"
	NewCredit         Component = "new_credit"
)

// componentOrder is the fixed evaluation and emission order.
var componentOrder = []Component{
	PaymentHistory,
	CreditUtilization,
	CreditAge,
	CreditMix,
	NewCredit,
}

// Components returns the five components in their fixed order.
func Components() []Component {
	list := make([]Component, len(componentOrder))
	copy(list, componentOrder)
	return list
}

// Model holds the scoring configuration: per-component weights, the score
// bounds, and the sub-score clamping variant. Models are value types with
// no mutable state, safe to share across any number of goroutines.
type Model struct {
	Weights  map[Component]float64
	MinScore int
	MaxScore int

	// ClampComponents selects the corrected variant that holds every
	// sub-score to [0,1]. The default (false) reproduces the original
	// model, where out-of-contract input can push a sub-score above 1.
	ClampComponents bool
}

// Default returns the standard model: CIBIL-style 300-900 bounds with
// payment history 35%, utilization 30%, age 15%, mix 10%, new credit 10%.
func Default() Model {
	return Model{
		Weights: map[Component]float64{
			PaymentHistory:    0.35,
			CreditUtilization: 0.30,
			CreditAge:         0.15,
			CreditMix:         0.10,
			NewCredit:         0.10,
		},
		MinScore: 300,
		MaxScore: 900,
	}
}

// Range returns the span over which weighted contributions are distributed.
func (m Model) Range() int {
	return m.MaxScore - m.MinScore
}

// Validate checks the model invariants: a weight for each of the five
// components, no negative weights, weights summing to 1.0 (within floating
// point tolerance), and a positive score range.
func (m Model) Validate() error {
	sum := 0.0
	for _, c := range componentOrder {
		w, ok := m.Weights[c]
		if !ok {
			return fmt.Errorf("model has no weight for component: %s", c)
		}
		if w < 0 {
			return fmt.Errorf("negative weight for component %s: %f", c, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights sum to %f, must sum to 1.0", sum)
	}
	if m.MaxScore <= m.MinScore {
		return fmt.Errorf("invalid score bounds: [%d, %d]", m.MinScore, m.MaxScore)
	}
	return nil
}

// normalize applies the corrected-variant clamp when enabled.
func (m Model) normalize(s float64) float64 {
	if !m.ClampComponents {
		return s
	}
	return math.Min(math.Max(s, 0), 1)
}
