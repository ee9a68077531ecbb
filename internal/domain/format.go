package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const unknown = "不明"

// FormatToday renders the current-conditions summary. Each line falls back to
// 不明 independently; the temperature line needs both temp and feels-like.
func FormatToday(name, region string, c CurrentConditions, sender string) string {
	lines := []string{
		fmt.Sprintf("【天気】 %s (%s) (from=%s)", name, region, sender),
		"・状況: " + descriptionOrUnknown(c),
		temperatureLine(c),
		humidityLine(c),
		windLine(c),
	}
	return strings.Join(lines, "\n")
}

func descriptionOrUnknown(c CurrentConditions) string {
	if c.Description == "" {
		return unknown
	}
	return c.Description
}

func temperatureLine(c CurrentConditions) string {
	if c.TempC == nil || c.FeelsLikeC == nil {
		return "・気温: " + unknown
	}
	return fmt.Sprintf("・気温: %.1f℃（体感 %.1f℃）", *c.TempC, *c.FeelsLikeC)
}

func humidityLine(c CurrentConditions) string {
	if c.HumidityPct == nil {
		return "・湿度: " + unknown
	}
	return fmt.Sprintf("・湿度: %d%%", *c.HumidityPct)
}

func windLine(c CurrentConditions) string {
	if c.WindMS == nil {
		return "・風: " + unknown
	}
	return "・風: " + strconv.FormatFloat(*c.WindMS, 'f', -1, 64) + " m/s"
}
