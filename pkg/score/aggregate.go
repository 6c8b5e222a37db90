package score

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrMissingComponent is returned by Aggregate when a hand-assembled
// ComponentScores map lacks one of the five components.
var ErrMissingComponent = errors.New("missing component score")

// ComponentScores maps each component to its normalized sub-score,
// nominally in [0,1].
type ComponentScores map[Component]float64

// Contribution is one component's share of the final score in points.
type Contribution struct {
	Component Component `json:"component" yaml:"component"`
	Score     float64   `json:"score" yaml:"score"`
	Weight    float64   `json:"weight" yaml:"weight"`
	Points    float64   `json:"points" yaml:"points"`
}

// Aggregate combines the five component scores into the final bounded
// score and the per-component contribution breakdown, in fixed component
// order. Each contribution is score * weight * range; the rounded total
// (math.Round, half away from zero) is shifted by MinScore and clamped to
// [MinScore, MaxScore]. Contributions are the pre-clamp point values, so
// they may not sum to finalScore-MinScore when the clamp fires or a
// sub-score escaped [0,1]. Missing components are an error, never a
// silent zero.
func (m Model) Aggregate(scores ComponentScores) (int, []Contribution, error) {
	contributions := make([]Contribution, 0, len(componentOrder))
	total := 0.0

	for _, c := range componentOrder {
		s, ok := scores[c]
		if !ok {
			return 0, nil, fmt.Errorf("%w: %s", ErrMissingComponent, c)
		}
		w := m.Weights[c]
		points := s * w * float64(m.Range())
		contributions = append(contributions, Contribution{
			Component: c,
			Score:     s,
			Weight:    w,
			Points:    points,
		})
		total += points
	}

	final := int(math.Round(total)) + m.MinScore
	if final > m.MaxScore {
		final = m.MaxScore
	}
	if final < m.MinScore {
		final = m.MinScore
	}

	return final, contributions, nil
}
