package domain

import (
	"slices"
	"strings"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentWeather  Intent = "weather"
	IntentForecast Intent = "forecast"
	IntentUmbrella Intent = "umbrella"
	IntentCold     Intent = "cold"
	IntentOutfit   Intent = "outfit"
	IntentRaw      Intent = "raw"
)

// Mode is the display-oriented refinement of an intent reported back to the
// caller in response metadata. The mapping from Intent is fixed and total.
type Mode string

const (
	ModeToday    Mode = "today"
	ModeForecast Mode = "forecast"
	ModeUmbrella Mode = "umbrella"
	ModeCold     Mode = "cold"
	ModeOutfit   Mode = "outfit"
	ModeRaw      Mode = "raw"
)

// Mode returns the display mode for the intent.
func (i Intent) Mode() Mode {
	switch i {
	case IntentWeather:
		return ModeToday
	case IntentForecast:
		return ModeForecast
	case IntentUmbrella:
		return ModeUmbrella
	case IntentCold:
		return ModeCold
	case IntentOutfit:
		return ModeOutfit
	}
	return ModeRaw
}

// ParsedCommand is the result of classifying one user message.
// City is empty only for a raw command with no chip match.
type ParsedCommand struct {
	Intent Intent
	City   string
	Mode   Mode
}

// Normalize collapses a raw message into its matching form: trimmed, U+3000
// converted to ASCII space, then all spaces removed. Removing spaces lets
// users type city and keyword in either order with or without a separator.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "　", " ")
	return strings.ReplaceAll(s, " ", "")
}

// Parser classifies messages against an injected chip list. The list is
// read-only after construction and safe for concurrent use.
type Parser struct {
	chips []string
}

// NewParser creates a Parser over the given city chips. Chip order defines
// match priority during extraction.
func NewParser(chips []string) *Parser {
	return &Parser{chips: chips}
}

// Parse normalizes the message, picks the intent by keyword precedence, and
// extracts the city. Messages with no keyword either short-circuit on an
// exact chip match or pass through as raw.
func (p *Parser) Parse(raw string) ParsedCommand {
	msg := Normalize(raw)
	if msg == "" {
		return ParsedCommand{Intent: IntentRaw, Mode: ModeRaw}
	}

	var intent Intent
	var key string
	switch {
	case containsAny(msg, "週間天気", "週刊天気", "予報"):
		intent, key = IntentForecast, "週間天気"
	case containsAny(msg, "傘", "雨"):
		// 雨 alone is broad; still routed to umbrella advice.
		intent, key = IntentUmbrella, "傘"
	case containsAny(msg, "寒さ", "寒い"):
		intent, key = IntentCold, "寒さ"
	case strings.Contains(msg, "服装"):
		intent, key = IntentOutfit, "服装"
	case strings.Contains(msg, "天気"):
		intent, key = IntentWeather, "天気"
	default:
		if slices.Contains(p.chips, msg) {
			return ParsedCommand{Intent: IntentWeather, City: msg, Mode: ModeToday}
		}
		return ParsedCommand{Intent: IntentRaw, City: msg, Mode: ModeRaw}
	}

	return ParsedCommand{Intent: intent, City: p.extractCity(msg, key), Mode: intent.Mode()}
}

// extractCity picks the place token out of a keyword-bearing message. A known
// chip substring wins over keyword stripping, so a message mixing free text
// with a registered city resolves to the registered one.
func (p *Parser) extractCity(msg, key string) string {
	for _, chip := range p.chips {
		if strings.Contains(msg, chip) {
			return chip
		}
	}

	city := strings.ReplaceAll(msg, key, "")
	for _, particle := range []string{"今日の", "今日", "の"} {
		city = strings.ReplaceAll(city, particle, "")
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return DefaultCity
	}
	return city
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
