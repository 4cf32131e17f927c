package activity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/tdeecalc/internal/ctxlog"
	"github.com/specialistvlad/tdeecalc/internal/numfmt"
)

const (
	menuHeader  = "活動レベルを選んでください:"
	choiceLabel = "選択してください (1-5): "
	firstIndent = "     → "
	nextIndent  = "       "
)

// ErrUnknownKey is reported for any answer that does not name a level.
var ErrUnknownKey = errors.New("1〜5の番号で選択してください。")

// LineReader is the console surface the selector needs. *prompt.Reader
// satisfies it.
type LineReader interface {
	ReadLine(ctx context.Context, label string) (string, error)
	Println(a ...any)
}

// Menu renders the numbered list of levels with their explanations.
func Menu() string {
	var b strings.Builder
	b.WriteString(menuHeader)
	b.WriteByte('\n')
	for _, l := range levels {
		fmt.Fprintf(&b, " %d = %s（%s, 係数 %s）\n", l.Key, l.Label, l.LabelEn, numfmt.Plain(l.Multiplier))
		for i, line := range l.Description {
			if i == 0 {
				b.WriteString(firstIndent)
			} else {
				b.WriteString(nextIndent)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseKey accepts only a plain run of ASCII digits naming a defined level.
func ParseKey(raw string) (Level, bool) {
	if raw == "" {
		return Level{}, false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return Level{}, false
		}
	}
	key, err := strconv.Atoi(raw)
	if err != nil {
		return Level{}, false
	}
	return Lookup(key)
}

// Select prints the menu and asks until the answer names one of the levels.
// It only returns an error when the reader is interrupted.
func Select(ctx context.Context, r LineReader) (Level, error) {
	logger := ctxlog.FromContext(ctx)

	r.Println(strings.TrimSuffix(Menu(), "\n"))
	for {
		raw, err := r.ReadLine(ctx, choiceLabel)
		if err != nil {
			return Level{}, err
		}
		if level, ok := ParseKey(raw); ok {
			logger.Debug("Activity level selected.", "key", level.Key, "multiplier", level.Multiplier)
			return level, nil
		}
		logger.Debug("Rejected activity choice.", "input", raw)
		r.Println(ErrUnknownKey.Error())
	}
}
