// Package session runs one interactive calculation: it asks for weight, body
// fat and activity level, then prints the report. A session is a straight
// line with no state kept between runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/tdeecalc/internal/activity"
	"github.com/specialistvlad/tdeecalc/internal/ctxlog"
	"github.com/specialistvlad/tdeecalc/internal/prompt"
	"github.com/specialistvlad/tdeecalc/internal/report"
	"github.com/specialistvlad/tdeecalc/internal/tdee"
)

// ErrCancelled is returned when the user aborts before the report is printed.
var ErrCancelled = errors.New("session cancelled")

const (
	weightLabel  = "体重(kg)を入力してください: "
	bodyFatLabel = "体脂肪率(%)を入力してください: "
)

// Outcome is what a completed session computed and printed.
type Outcome struct {
	Input  tdee.Input
	Level  activity.Level
	Result tdee.Result
	Report string
}

// Run drives one session over in/out. Either the whole report is written to
// out or none of it is; an interrupt at any prompt returns ErrCancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer) (*Outcome, error) {
	ctx, logger := ctxlog.With(ctx, "component", "session")
	logger.Debug("Session started.")

	r := prompt.NewReader(in, out)
	defer r.Close()

	weight, err := r.Float(ctx, weightLabel, tdee.WeightBounds)
	if err != nil {
		return nil, cancelled(err)
	}
	bodyFat, err := r.Float(ctx, bodyFatLabel, tdee.BodyFatBounds)
	if err != nil {
		return nil, cancelled(err)
	}
	level, err := activity.Select(ctx, r)
	if err != nil {
		return nil, cancelled(err)
	}

	input := tdee.Input{WeightKg: weight, BodyFatPct: bodyFat}
	result := tdee.Compute(input, level.Multiplier)
	logger.Debug("Calculation complete.",
		"lean_mass_kg", result.LeanMassKg,
		"bmr_kcal", result.BMRKcal,
		"tdee_kcal", result.TDEEKcal,
	)

	text := report.Render(input, level, result)

	// Last chance to honour an interrupt that arrived during rendering.
	if err := ctx.Err(); err != nil {
		return nil, cancelled(err)
	}
	if _, err := io.WriteString(out, "\n"+text); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("Session finished.")
	return &Outcome{Input: input, Level: level, Result: result, Report: text}, nil
}

func cancelled(err error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
