package main

import (
	"fmt"

	"github.com/mchmarny/cibil/pkg/score"
	"github.com/urfave/cli/v2"
)

var (
	modelCmd = &cli.Command{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "Print the active scoring model (weights, bounds, variant)",
		Action:  cmdModel,
	}
)

type modelWeight struct {
	Component score.Component `json:"component" yaml:"component"`
	Weight    float64         `json:"weight" yaml:"weight"`
}

type modelView struct {
	MinScore        int           `json:"min_score" yaml:"minScore"`
	MaxScore        int           `json:"max_score" yaml:"maxScore"`
	ScoreRange      int           `json:"score_range" yaml:"scoreRange"`
	ClampComponents bool          `json:"clamp_components" yaml:"clampComponents"`
	Weights         []modelWeight `json:"weights" yaml:"weights"`
}

func cmdModel(c *cli.Context) error {
	if err := model.Validate(); err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	v := modelView{
		MinScore:        model.MinScore,
		MaxScore:        model.MaxScore,
		ScoreRange:      model.Range(),
		ClampComponents: model.ClampComponents,
		Weights:         make([]modelWeight, 0, len(model.Weights)),
	}
	for _, comp := range score.Components() {
		v.Weights = append(v.Weights, modelWeight{Component: comp, Weight: model.Weights[comp]})
	}

	if err := encode(v); err != nil {
		return fmt.Errorf("error encoding model: %w", err)
	}

	return nil
}
