package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/infrastructure/logger"
)

// The upstream only gives relative publish dates ("3 weeks ago"). Ordering the
// feed therefore works on a composite (unit, magnitude) key parsed out of that
// text: a smaller unit index means a more recent video, and within one unit a
// smaller magnitude wins.

// Unit indexes, ordered from most to least recent.
const (
	unitSecond = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
	unitCount
)

var unitNames = [unitCount]string{"second", "minute", "hour", "day", "week", "month", "year"}

// recencyUnitPatterns maps a content language onto the substrings identifying
// each unit in that language's relative-date text. Multiple patterns per unit
// cover inflected forms.
var recencyUnitPatterns = map[string][unitCount][]string{
	"en": {{"second"}, {"minute"}, {"hour"}, {"day"}, {"week"}, {"month"}, {"year"}},
	"ja": {{"秒"}, {"分"}, {"時間"}, {"日"}, {"週間"}, {"月"}, {"年"}},
	"de": {{"Sekunde"}, {"Minute"}, {"Stunde"}, {"Tag"}, {"Woche"}, {"Monat"}, {"Jahr"}},
	"fr": {{"seconde"}, {"minute"}, {"heure"}, {"jour"}, {"semaine"}, {"mois"}, {"an"}},
	"it": {{"second"}, {"minut"}, {"ora", "ore"}, {"giorn"}, {"settiman"}, {"mes"}, {"ann"}},
}

// RecencyKey orders videos by how long ago they were published.
type RecencyKey struct {
	Unit      int
	Magnitude int
}

// Less reports whether k is more recent than other.
func (k RecencyKey) Less(other RecencyKey) bool {
	if k.Unit != other.Unit {
		return k.Unit < other.Unit
	}
	return k.Magnitude < other.Magnitude
}

// After reports whether k is older than other.
func (k RecencyKey) After(other RecencyKey) bool {
	return other.Less(k)
}

// RecencyUnitIndex resolves a configured unit name to its index, -1 if unknown.
func RecencyUnitIndex(name string) int {
	for i, n := range unitNames {
		if n == name {
			return i
		}
	}
	return -1
}

// ParseRecency extracts the (unit, magnitude) key from a relative publish date
// in the given content language. The magnitude is every digit of the text
// concatenated; the unit is the first matching pattern in recency order.
func ParseRecency(publishDate, lang string) (RecencyKey, bool) {
	patterns, ok := recencyUnitPatterns[lang]
	if !ok {
		patterns = recencyUnitPatterns["en"]
		if lang != "en" {
			logger.GetLogger().WithField("lang", lang).Warn("no recency unit table for language, using en")
		}
	}

	var digits strings.Builder
	for _, r := range publishDate {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	magnitude, err := strconv.Atoi(digits.String())
	if err != nil {
		return RecencyKey{}, false
	}

	for unit := 0; unit < unitCount; unit++ {
		for _, pattern := range patterns[unit] {
			if strings.Contains(publishDate, pattern) {
				return RecencyKey{Unit: unit, Magnitude: magnitude}, true
			}
		}
	}
	return RecencyKey{}, false
}

// AggregateByRecency buckets videos by recency key, drops everything older
// than the cutoff, and returns the buckets flattened newest-first. Videos
// whose publish date cannot be parsed are dropped and logged.
func AggregateByRecency(videos []model.VideoSummary, lang string, cutoff RecencyKey) []model.VideoSummary {
	buckets := map[RecencyKey][]model.VideoSummary{}
	for _, v := range videos {
		key, ok := ParseRecency(v.PublishDateText, lang)
		if !ok {
			logger.GetLogger().WithField("publishDate", v.PublishDateText).Warn("failed to parse publish date, dropping video")
			continue
		}
		if key.After(cutoff) {
			continue
		}
		buckets[key] = append(buckets[key], v)
	}

	keys := make([]RecencyKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var out []model.VideoSummary
	for _, key := range keys {
		out = append(out, buckets[key]...)
	}
	return out
}
