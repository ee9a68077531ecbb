package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testParser() *Parser {
	return NewParser(DefaultCityChips)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims edges", "  東京天気  ", "東京天気"},
		{"full-width space removed", "東京　天気", "東京天気"},
		{"ascii space removed", "東京 天気", "東京天気"},
		{"mixed spaces", " 東京　 週間天気 ", "東京週間天気"},
		{"empty", "", ""},
		{"whitespace only", " 　 ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestParse_Intents(t *testing.T) {
	p := testParser()

	tests := []struct {
		name   string
		input  string
		intent Intent
		city   string
		mode   Mode
	}{
		{"weather with chip", "横浜天気", IntentWeather, "横浜", ModeToday},
		{"weather keyword after city", "天気横浜", IntentWeather, "横浜", ModeToday},
		{"forecast beats weather", "東京週間天気", IntentForecast, "東京", ModeForecast},
		{"forecast 週刊 variant", "週刊天気横浜", IntentForecast, "横浜", ModeForecast},
		{"forecast 予報 keyword", "福岡予報", IntentForecast, "福岡", ModeForecast},
		{"umbrella keyword", "千曲傘", IntentUmbrella, "千曲", ModeUmbrella},
		{"rain routes to umbrella", "船橋に雨", IntentUmbrella, "船橋", ModeUmbrella},
		{"cold 寒さ", "長野寒さ", IntentCold, "長野", ModeCold},
		{"cold 寒い with chip", "東京寒い", IntentCold, "東京", ModeCold},
		{"outfit", "平塚服装", IntentOutfit, "平塚", ModeOutfit},
		{"unknown city from remainder", "大阪天気", IntentWeather, "大阪", ModeToday},
		{"particle stripped", "今日の大阪天気", IntentWeather, "大阪", ModeToday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := p.Parse(tt.input)
			assert.Equal(t, tt.intent, cmd.Intent)
			assert.Equal(t, tt.city, cmd.City)
			assert.Equal(t, tt.mode, cmd.Mode)
		})
	}
}

func TestParse_ChipShortCircuit(t *testing.T) {
	p := testParser()

	for _, chip := range DefaultCityChips {
		t.Run(chip, func(t *testing.T) {
			cmd := p.Parse(chip)
			assert.Equal(t, IntentWeather, cmd.Intent)
			assert.Equal(t, chip, cmd.City)
			assert.Equal(t, ModeToday, cmd.Mode)
		})
	}
}

func TestParse_ChipBeatsRemainder(t *testing.T) {
	p := testParser()

	// Stripping the keyword would leave 大阪みなとみらい, but the registered
	// chip must win.
	cmd := p.Parse("大阪みなとみらい天気")
	assert.Equal(t, IntentWeather, cmd.Intent)
	assert.Equal(t, "みなとみらい", cmd.City)
}

func TestParse_ChipOrderIsPriority(t *testing.T) {
	p := NewParser([]string{"横浜", "みなとみらい"})

	// Both chips are substrings; the first in list order wins.
	cmd := p.Parse("みなとみらい横浜天気")
	assert.Equal(t, "横浜", cmd.City)
}

func TestParse_DefaultCity(t *testing.T) {
	p := testParser()

	tests := []struct {
		name  string
		input string
	}{
		{"bare keyword", "天気"},
		{"keyword with particles", "今日の天気"},
		{"bare forecast", "週間天気"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := p.Parse(tt.input)
			assert.Equal(t, DefaultCity, cmd.City)
		})
	}
}

func TestParse_Raw(t *testing.T) {
	p := testParser()

	t.Run("no keyword no chip", func(t *testing.T) {
		cmd := p.Parse("こんにちは")
		assert.Equal(t, IntentRaw, cmd.Intent)
		assert.Equal(t, "こんにちは", cmd.City)
		assert.Equal(t, ModeRaw, cmd.Mode)
	})

	t.Run("empty message", func(t *testing.T) {
		cmd := p.Parse("")
		assert.Equal(t, IntentRaw, cmd.Intent)
		assert.Empty(t, cmd.City)
		assert.Equal(t, ModeRaw, cmd.Mode)
	})
}

func TestIntentMode_TotalMapping(t *testing.T) {
	expected := map[Intent]Mode{
		IntentWeather:  ModeToday,
		IntentForecast: ModeForecast,
		IntentUmbrella: ModeUmbrella,
		IntentCold:     ModeCold,
		IntentOutfit:   ModeOutfit,
		IntentRaw:      ModeRaw,
	}
	for intent, mode := range expected {
		assert.Equal(t, mode, intent.Mode())
	}
	assert.Equal(t, ModeRaw, Intent("bogus").Mode())
}
