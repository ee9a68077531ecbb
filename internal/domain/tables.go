package domain

// DefaultCity is used when a keyword matched but no place token remained.
const DefaultCity = "東京"

// DefaultCityChips lists the registered quick-select city labels. Order
// matters: the first chip found as a substring wins during extraction.
var DefaultCityChips = []string{
	"横浜", "東京", "箱根", "白馬", "志賀高原", "ガーラ湯沢", "千曲", "船橋", "幕張", "福岡",
	"栂池", "みなとみらい", "保土ヶ谷", "平塚",
}

// DefaultCityAliases maps city labels to geocoding query strings for places
// OpenWeather resolves poorly from the Japanese label. Values without a
// country qualifier get ",JP" appended at query time.
var DefaultCityAliases = map[string]string{
	"横浜":     "Yokohama",
	"東京":     "Tokyo",
	"箱根":     "Hakone",
	"白馬":     "Hakuba",
	"栂池":     "Tsugaike Kogen",
	"志賀高原":   "Shiga Kogen",
	"ガーラ湯沢":  "GALA Yuzawa",
	"千曲":     "Chikuma",
	"船橋":     "Funabashi",
	"幕張":     "Makuhari",
	"福岡":     "Fukuoka",
	"みなとみらい": "Minatomirai Yokohama",
	"保土ヶ谷":   "Hodogaya Yokohama",
	"平塚":     "Hiratsuka",
}
