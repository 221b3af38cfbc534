package usecase

import (
	"testing"

	"github.com/erievs/FourthTube/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecencyEnglish(t *testing.T) {
	cases := []struct {
		text string
		unit int
		mag  int
	}{
		{"32 seconds ago", unitSecond, 32},
		{"5 minutes ago", unitMinute, 5},
		{"1 hour ago", unitHour, 1},
		{"3 days ago", unitDay, 3},
		{"2 weeks ago", unitWeek, 2},
		{"1 month ago", unitMonth, 1},
		{"10 years ago", unitYear, 10},
	}
	for _, tc := range cases {
		key, ok := ParseRecency(tc.text, "en")
		require.True(t, ok, tc.text)
		assert.Equal(t, RecencyKey{Unit: tc.unit, Magnitude: tc.mag}, key, tc.text)
	}
}

func TestParseRecencyLocales(t *testing.T) {
	key, ok := ParseRecency("3 週間前", "ja")
	require.True(t, ok)
	assert.Equal(t, RecencyKey{Unit: unitWeek, Magnitude: 3}, key)

	key, ok = ParseRecency("vor 2 Monaten", "de")
	require.True(t, ok)
	assert.Equal(t, RecencyKey{Unit: unitMonth, Magnitude: 2}, key)

	key, ok = ParseRecency("il y a 5 jours", "fr")
	require.True(t, ok)
	assert.Equal(t, RecencyKey{Unit: unitDay, Magnitude: 5}, key)

	key, ok = ParseRecency("2 settimane fa", "it")
	require.True(t, ok)
	assert.Equal(t, RecencyKey{Unit: unitWeek, Magnitude: 2}, key)
}

func TestParseRecencyFailures(t *testing.T) {
	_, ok := ParseRecency("no digits here", "en")
	assert.False(t, ok)

	_, ok = ParseRecency("42 fortnights ago", "en")
	assert.False(t, ok)
}

func TestRecencyKeyOrdering(t *testing.T) {
	hour3 := RecencyKey{Unit: unitHour, Magnitude: 3}
	day1 := RecencyKey{Unit: unitDay, Magnitude: 1}
	day4 := RecencyKey{Unit: unitDay, Magnitude: 4}

	// A smaller unit always wins over a smaller magnitude.
	assert.True(t, hour3.Less(day1))
	assert.True(t, day1.Less(day4))
	assert.True(t, day4.After(day1))
	assert.False(t, day1.Less(day1))
}

func TestAggregateByRecency(t *testing.T) {
	videos := []model.VideoSummary{
		{ID: "old", PublishDateText: "3 months ago"},
		{ID: "newest", PublishDateText: "3 hours ago"},
		{ID: "middle", PublishDateText: "1 day ago"},
		{ID: "unparseable", PublishDateText: "Premieres soon"},
		{ID: "boundary", PublishDateText: "2 months ago"},
	}
	cutoff := RecencyKey{Unit: unitMonth, Magnitude: 2}

	out := AggregateByRecency(videos, "en", cutoff)

	// Oldest-than-cutoff and unparseable entries are gone; the rest is
	// newest-first. The cutoff itself is inclusive.
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].ID)
	assert.Equal(t, "middle", out[1].ID)
	assert.Equal(t, "boundary", out[2].ID)
}

func TestAggregateByRecencyGroupsSameKey(t *testing.T) {
	videos := []model.VideoSummary{
		{ID: "a", PublishDateText: "1 day ago"},
		{ID: "b", PublishDateText: "2 hours ago"},
		{ID: "c", PublishDateText: "1 day ago"},
	}
	out := AggregateByRecency(videos, "en", RecencyKey{Unit: unitMonth, Magnitude: 2})
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].ID)
	// Same-key videos keep their arrival order within the bucket.
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestRecencyUnitIndex(t *testing.T) {
	assert.Equal(t, unitMonth, RecencyUnitIndex("month"))
	assert.Equal(t, unitSecond, RecencyUnitIndex("second"))
	assert.Equal(t, -1, RecencyUnitIndex("fortnight"))
}
