// Package report renders the three-block calculation report: the echoed
// inputs, the derivation steps and the final results.
package report

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/tdeecalc/internal/activity"
	"github.com/specialistvlad/tdeecalc/internal/numfmt"
	"github.com/specialistvlad/tdeecalc/internal/tdee"
)

// Render returns the full report as one string so it can be written in a
// single call. Blocks are separated by one blank line.
func Render(in tdee.Input, level activity.Level, res tdee.Result) string {
	var (
		weight  = numfmt.OneDecimal(in.WeightKg)
		bodyFat = numfmt.OneDecimal(in.BodyFatPct)
		lean    = numfmt.OneDecimal(res.LeanMassKg)
		bmr     = numfmt.OneDecimal(res.BMRKcal)
		total   = numfmt.OneDecimal(res.TDEEKcal)
		mult    = numfmt.Plain(level.Multiplier)
		factor  = fmt.Sprintf("%g", tdee.KcalPerLeanKg)
	)

	blocks := [][]string{
		{
			"[入力値]",
			fmt.Sprintf("体重: %s kg", weight),
			fmt.Sprintf("体脂肪率: %s %%", bodyFat),
			fmt.Sprintf("活動レベル: %s (%s, 係数 %s)", level.Label, level.LabelEn, mult),
		},
		{
			"[計算過程]",
			fmt.Sprintf("除脂肪体重 = 体重 × (1 − 体脂肪率/100) = %s × (1 − %s/100) = %s kg", weight, bodyFat, lean),
			fmt.Sprintf("基礎代謝 = 除脂肪体重 × %s = %s × %s = %s kcal", factor, lean, factor, bmr),
			fmt.Sprintf("消費カロリー = 基礎代謝 × 活動係数 = %s × %s = %s kcal", bmr, mult, total),
		},
		{
			"[計算結果]",
			fmt.Sprintf("除脂肪体重: %s kg", lean),
			fmt.Sprintf("基礎代謝: %s kcal", bmr),
			fmt.Sprintf("活動レベル: %s (係数 %s)", level.Label, mult),
			fmt.Sprintf("1日あたりの消費カロリー: %s kcal", total),
		},
	}

	parts := make([]string, len(blocks))
	for i, lines := range blocks {
		parts[i] = strings.Join(lines, "\n")
	}
	return strings.Join(parts, "\n\n") + "\n"
}
