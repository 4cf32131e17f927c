// Package activity holds the fixed table of activity levels and the console
// selector that asks the user to pick one.
package activity

// Level is one entry of the activity table. Levels are values; the table is
// never modified at runtime.
type Level struct {
	Key         int      `json:"key"`
	Label       string   `json:"label"`
	LabelEn     string   `json:"label_en"`
	Multiplier  float64  `json:"multiplier"`
	Description []string `json:"description"`
}

// levels is indexed by Key-1.
var levels = [...]Level{
	{
		Key: 1, Label: "座りがち", LabelEn: "Sedentary", Multiplier: 1.2,
		Description: []string{
			"デスクワーク中心、通勤や買い物以外ほとんど歩かない",
		},
	},
	{
		Key: 2, Label: "軽い運動", LabelEn: "Lightly Active", Multiplier: 1.375,
		Description: []string{
			"週1〜3回の軽い運動（散歩・軽いウォーキング）、",
			"立ち仕事が多め",
		},
	},
	{
		Key: 3, Label: "中程度の運動", LabelEn: "Moderately Active", Multiplier: 1.55,
		Description: []string{
			"週3〜5回の運動（速歩ウォーキング・軽いジョギング・",
			"サイクリング・ヨガなど）",
		},
	},
	{
		Key: 4, Label: "非常に活発", LabelEn: "Very Active", Multiplier: 1.725,
		Description: []string{
			"ほぼ毎日の運動（ランニング・水泳・筋トレ・",
			"登山など）、肉体労働が中心の仕事",
		},
	},
	{
		Key: 5, Label: "極めて活発", LabelEn: "Extra Active", Multiplier: 1.9,
		Description: []string{
			"1日2回のトレーニングを行うアスリート、",
			"建設業・農業など非常に体を使う仕事",
		},
	},
}

// All returns the levels in key order. The returned slice is a copy.
func All() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// Lookup returns the level with the given key.
func Lookup(key int) (Level, bool) {
	if key < 1 || key > len(levels) {
		return Level{}, false
	}
	return levels[key-1], true
}
