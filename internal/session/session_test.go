package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/specialistvlad/tdeecalc/internal/numfmt"
	"github.com/specialistvlad/tdeecalc/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		wantLean string
		wantBMR  string
		wantTDEE string
		wantKey  int
	}{
		{
			name:     "moderately active",
			input:    "70\n20\n3\n",
			wantLean: "56.0", wantBMR: "1568.0", wantTDEE: "2430.4", wantKey: 3,
		},
		{
			name:     "sedentary without fat",
			input:    "60\n0\n1\n",
			wantLean: "60.0", wantBMR: "1680.0", wantTDEE: "2016.0", wantKey: 1,
		},
		{
			name:     "with retries at every prompt",
			input:    "abc\n-5\n70\n101\n20\n0\n6\nx\n3\n",
			wantLean: "56.0", wantBMR: "1568.0", wantTDEE: "2430.4", wantKey: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			outcome, err := Run(context.Background(), strings.NewReader(tc.input), out)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, outcome.Level.Key)
			assert.Equal(t, tc.wantLean, numfmt.OneDecimal(outcome.Result.LeanMassKg))
			assert.Equal(t, tc.wantBMR, numfmt.OneDecimal(outcome.Result.BMRKcal))
			assert.Equal(t, tc.wantTDEE, numfmt.OneDecimal(outcome.Result.TDEEKcal))

			require.True(t, strings.HasSuffix(out.String(), "\n"+outcome.Report), "report is the last thing written")
			assert.Contains(t, out.String(), "1日あたりの消費カロリー: "+tc.wantTDEE+" kcal")
		})
	}
}

func TestRun_InterruptAtEachPrompt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "weight", input: ""},
		{name: "body fat", input: "70\n"},
		{name: "activity", input: "70\n20\n9\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			outcome, err := Run(context.Background(), strings.NewReader(tc.input), out)

			require.ErrorIs(t, err, ErrCancelled)
			require.ErrorIs(t, err, prompt.ErrInterrupted)
			assert.Nil(t, outcome)
			assert.NotContains(t, out.String(), "[入力値]", "no part of the report may be printed")
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}

	// --- Act ---
	_, err := Run(ctx, pr, out)

	// --- Assert ---
	require.ErrorIs(t, err, ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, weightLabel, out.String())
}

func TestRun_OverlongAnswerIsRepromptedNotCancelled(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := strings.Repeat("9", 70000) + "\n70\n20\n3\n"
	out := &bytes.Buffer{}

	// --- Act ---
	outcome, err := Run(context.Background(), strings.NewReader(input), out)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "2430.4", numfmt.OneDecimal(outcome.Result.TDEEKcal))
	assert.Equal(t, 1, strings.Count(out.String(), prompt.ErrNotNumber.Error()))
	assert.Equal(t, 2, strings.Count(out.String(), weightLabel))
}
