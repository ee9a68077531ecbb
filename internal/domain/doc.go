// Package domain models the weather console's command grammar and reply
// building blocks.
//
// # Command grammar
//
// Messages are free-form Japanese text. Normalization strips all spaces
// (ASCII and U+3000) so that city and keyword can appear in either order,
// with or without a separator: 東京天気, 天気 東京, and 東京　天気 all parse
// the same way.
//
// Intent keywords, checked in precedence order because the sets overlap:
//
//	週間天気 / 週刊天気 / 予報  →  forecast
//	傘 / 雨                     →  umbrella
//	寒さ / 寒い                 →  cold
//	服装                        →  outfit
//	天気                        →  weather
//
// A message with no keyword that exactly equals a registered city chip is a
// shortcut for today's weather in that city. Anything else passes through as
// a raw echo.
//
// City extraction scans the chip list first (list order is the tie-break), so
// a message mixing free text with a registered city resolves to the
// registered one. When no chip matches, the keyword and the particles 今日の,
// 今日, の are stripped and the remainder is the city; an empty remainder
// defaults to 東京.
//
// # Provider data conventions
//
// Current conditions and forecast entries come from OpenWeather with
// units=metric. Numeric fields the provider omitted are nil pointers and
// render as 不明, never as a zero value. Forecast entries arrive on a 3-hour
// grid covering roughly five days; the digest groups them by local calendar
// date and represents each date by the entry closest to local noon.
package domain
