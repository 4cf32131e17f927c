package activity

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/tdeecalc/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Parallel()

	want := map[int]float64{1: 1.2, 2: 1.375, 3: 1.55, 4: 1.725, 5: 1.9}

	all := All()
	require.Len(t, all, 5)
	for i, l := range all {
		assert.Equal(t, i+1, l.Key, "levels are ordered by key")
		assert.Equal(t, want[l.Key], l.Multiplier)
		assert.NotEmpty(t, l.Label)
		assert.NotEmpty(t, l.LabelEn)
		assert.NotEmpty(t, l.Description)
		if i > 0 {
			assert.Greater(t, l.Multiplier, all[i-1].Multiplier, "multipliers increase with key")
		}
	}

	// Mutating the copy must not leak into the table.
	all[0].Multiplier = 99
	l, ok := Lookup(1)
	require.True(t, ok)
	assert.Equal(t, 1.2, l.Multiplier)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw     string
		wantKey int
		wantOK  bool
	}{
		{"1", 1, true},
		{"5", 5, true},
		{"03", 3, true},
		{"0", 0, false},
		{"6", 0, false},
		{"-1", 0, false},
		{"+3", 0, false},
		{"3.0", 0, false},
		{"x", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tc := range testCases {
		l, ok := ParseKey(tc.raw)
		assert.Equal(t, tc.wantOK, ok, "ParseKey(%q)", tc.raw)
		if tc.wantOK {
			assert.Equal(t, tc.wantKey, l.Key, "ParseKey(%q)", tc.raw)
		}
	}
}

func TestSelect_RepromptsUntilValid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	r := prompt.NewReader(strings.NewReader("0\n6\nx\n3\n"), out)
	t.Cleanup(r.Close)

	// --- Act ---
	level, err := Select(context.Background(), r)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 3, level.Key)
	assert.Equal(t, 1.55, level.Multiplier)

	output := out.String()
	assert.Equal(t, 3, strings.Count(output, ErrUnknownKey.Error()))
	assert.Equal(t, 4, strings.Count(output, choiceLabel))
	assert.True(t, strings.HasPrefix(output, menuHeader), "menu is shown before the first prompt")
}

func TestSelect_FullWidthDigit(t *testing.T) {
	t.Parallel()

	r := prompt.NewReader(strings.NewReader("５\n"), &bytes.Buffer{})
	t.Cleanup(r.Close)

	level, err := Select(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, 5, level.Key)
}

func TestSelect_Interrupted(t *testing.T) {
	t.Parallel()

	r := prompt.NewReader(strings.NewReader("7\n"), &bytes.Buffer{})
	t.Cleanup(r.Close)

	_, err := Select(context.Background(), r)

	require.ErrorIs(t, err, prompt.ErrInterrupted)
}

func TestMenu(t *testing.T) {
	t.Parallel()

	menu := Menu()

	assert.Contains(t, menu, " 1 = 座りがち（Sedentary, 係数 1.2）\n     → デスクワーク中心、通勤や買い物以外ほとんど歩かない\n")
	assert.Contains(t, menu, " 2 = 軽い運動（Lightly Active, 係数 1.375）\n")
	assert.Contains(t, menu, "       立ち仕事が多め\n")
	assert.Contains(t, menu, " 5 = 極めて活発（Extra Active, 係数 1.9）\n")
}
