package domain

import "strings"

// UmbrellaAdvice recommends an umbrella when the current category contains
// Rain or Drizzle, or when any rain volume field was present at all. The
// magnitude is deliberately ignored. Everything else gets the fixed hedge.
func UmbrellaAdvice(c CurrentConditions) string {
	need := strings.Contains(c.WeatherMain, "Rain") ||
		strings.Contains(c.WeatherMain, "Drizzle") ||
		c.HasRain
	if need {
		return "傘：必要（雨）"
	}
	return "傘：念のため（今後数日で雨/雪の可能性あり）"
}

// ColdAdvice buckets purely on feels-like temperature. Boundaries are
// inclusive at the upper end of each bracket.
func ColdAdvice(c CurrentConditions) string {
	if c.FeelsLikeC == nil {
		return "寒さ：不明"
	}
	switch feels := *c.FeelsLikeC; {
	case feels <= 0:
		return "寒さ：かなり寒い（防寒必須）"
	case feels <= 5:
		return "寒さ：寒い（コート＋手袋推奨）"
	case feels <= 10:
		return "寒さ：やや寒い（上着必須）"
	case feels <= 16:
		return "寒さ：ひんやり（薄手の上着）"
	}
	return "寒さ：快適"
}

// OutfitAdvice buckets on feels-like with its own breakpoints and wording,
// independent of ColdAdvice.
func OutfitAdvice(c CurrentConditions) string {
	if c.FeelsLikeC == nil {
		return "服装：不明"
	}
	switch feels := *c.FeelsLikeC; {
	case feels <= 5:
		return "服装：コート/ダウン + 長袖 + 防寒小物"
	case feels <= 10:
		return "服装：コート/ジャケット + 長袖"
	case feels <= 16:
		return "服装：薄手ジャケット + 長袖"
	case feels <= 22:
		return "服装：長袖 or 羽織り"
	}
	return "服装：半袖寄り"
}
