package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyNotes_JSONArray(t *testing.T) {
	raw := `[
		{"note":"left voicemail","author":"u-101","authorName":"SSG Vasquez","timestamp":"2023-04-02T15:04:05Z"},
		{"note":"ASVAB Friday","author":"u-102","authorName":"SFC Cole","timestamp":"2023-04-09T09:30:00Z"}
	]`

	notes := ParseLegacyNotes(raw)
	require.Len(t, notes, 2)

	assert.Equal(t, 1, notes[0].Seq)
	assert.Equal(t, "SSG Vasquez", notes[0].Author, "display name wins over the author id")
	assert.Equal(t, "left voicemail", notes[0].Body)
	assert.Equal(t, time.Date(2023, 4, 2, 15, 4, 5, 0, time.UTC), notes[0].CreatedAt)

	assert.Equal(t, 2, notes[1].Seq)
	assert.Equal(t, "ASVAB Friday", notes[1].Body)
	assert.Equal(t, time.Date(2023, 4, 9, 9, 30, 0, 0, time.UTC), notes[1].CreatedAt)
}

func TestParseLegacyNotes_MissingFields(t *testing.T) {
	raw := `[{"note":"no author"},{"author":"u-103"},{"note":"  "}]`

	notes := ParseLegacyNotes(raw)
	require.Len(t, notes, 1, "Entries without a body are dropped")
	assert.Equal(t, "Unknown", notes[0].Author, "an author id alone never becomes the display name")
	assert.Equal(t, "no author", notes[0].Body)
	assert.True(t, notes[0].CreatedAt.IsZero(), "missing timestamps are left for the database")
}

func TestParseLegacyNotes_BadTimestamp(t *testing.T) {
	notes := ParseLegacyNotes(`[{"note":"called twice","authorName":"SSG Ortiz","timestamp":"last tuesday"}]`)
	require.Len(t, notes, 1)
	assert.Equal(t, "SSG Ortiz", notes[0].Author)
	assert.True(t, notes[0].CreatedAt.IsZero())
}

func TestParseLegacyNotes_PlainText(t *testing.T) {
	notes := ParseLegacyNotes("met at the county fair")
	require.Len(t, notes, 1)
	assert.Equal(t, 1, notes[0].Seq)
	assert.Equal(t, "Unknown", notes[0].Author)
	assert.Equal(t, "met at the county fair", notes[0].Body)
}

func TestParseLegacyNotes_Empty(t *testing.T) {
	assert.Nil(t, ParseLegacyNotes(""))
	assert.Nil(t, ParseLegacyNotes("   "))
	assert.Nil(t, ParseLegacyNotes("[]"))
}

func TestParseLegacyNotes_MalformedJSON(t *testing.T) {
	// Broken JSON that still starts with a bracket falls back to a
	// single plain-text entry.
	notes := ParseLegacyNotes(`[{"author": broken`)
	require.Len(t, notes, 1)
	assert.Equal(t, "Unknown", notes[0].Author)
	assert.Equal(t, `[{"author": broken`, notes[0].Body)
}

func TestAgeAt(t *testing.T) {
	on := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday already passed", time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), 25},
		{"birthday today", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), 25},
		{"birthday tomorrow", time.Date(2000, 6, 16, 0, 0, 0, 0, time.UTC), 24},
		{"born end of year", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeAt(tc.dob, on))
		})
	}
}
