package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/tdeecalc/internal/ctxlog"
	"github.com/specialistvlad/tdeecalc/internal/numfmt"
)

// ErrNotNumber is reported when a line cannot be read as a decimal number.
var ErrNotNumber = errors.New("数値で入力してください。例: 70, 20.5 など")

// BoundsError reports a value outside an inclusive limit.
type BoundsError struct {
	Value float64
	Limit float64
	Upper bool
}

// Error implements the error interface for BoundsError.
func (e *BoundsError) Error() string {
	if e.Upper {
		return fmt.Sprintf("値が大きすぎます。%s以下を入力してください。", numfmt.Plain(e.Limit))
	}
	return fmt.Sprintf("値が小さすぎます。%s以上を入力してください。", numfmt.Plain(e.Limit))
}

// Bounds holds optional inclusive limits. A nil limit is not checked.
type Bounds struct {
	Min *float64
	Max *float64
}

// AtLeast returns bounds with only a lower limit.
func AtLeast(min float64) Bounds {
	return Bounds{Min: &min}
}

// Between returns bounds with both limits.
func Between(min, max float64) Bounds {
	return Bounds{Min: &min, Max: &max}
}

// Check returns a *BoundsError when v violates a limit. The lower limit is
// checked first.
func (b Bounds) Check(v float64) error {
	if b.Min != nil && v < *b.Min {
		return &BoundsError{Value: v, Limit: *b.Min}
	}
	if b.Max != nil && v > *b.Max {
		return &BoundsError{Value: v, Limit: *b.Max, Upper: true}
	}
	return nil
}

// ParseNumber reads a finite decimal number from an already normalised line.
// Hex floats ("0x1p6") and digit separators ("1_000") are not decimal
// literals and are rejected.
func ParseNumber(raw string) (float64, error) {
	if strings.ContainsAny(raw, "xX_") {
		return 0, ErrNotNumber
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumber
	}
	return v, nil
}

// Float asks label until the answer parses and satisfies bounds. Each rejected
// answer prints the reason and asks again; there is no retry limit.
func (r *Reader) Float(ctx context.Context, label string, bounds Bounds) (float64, error) {
	logger := ctxlog.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		raw, err := r.ReadLine(ctx, label)
		if err != nil {
			return 0, err
		}

		v, err := ParseNumber(raw)
		if err == nil {
			err = bounds.Check(v)
		}
		if err != nil {
			logger.Debug("Rejected numeric answer.", "input", raw, "attempt", attempt, "reason", err)
			r.Println(err.Error())
			continue
		}

		logger.Debug("Accepted numeric answer.", "value", v, "attempt", attempt)
		return v, nil
	}
}
