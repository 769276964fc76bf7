package controllers

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation_JSONString(t *testing.T) {
	loc, err := parseLocation(`{"latitude":12.9,"longitude":77.6}`)
	require.NoError(t, err)
	require.NotNil(t, loc)
	require.NotNil(t, loc.Latitude)
	require.NotNil(t, loc.Longitude)
	assert.Equal(t, 12.9, *loc.Latitude)
	assert.Equal(t, 77.6, *loc.Longitude)
	assert.Empty(t, loc.Address)
}

func TestParseLocation_WithAddress(t *testing.T) {
	loc, err := parseLocation(`{"latitude":20.932185,"longitude":77.757218,"address":"MG Road"}`)
	require.NoError(t, err)
	assert.Equal(t, 20.932185, *loc.Latitude)
	assert.Equal(t, 77.757218, *loc.Longitude)
	assert.Equal(t, "MG Road", loc.Address)
}

func TestParseLocation_InvalidJSON(t *testing.T) {
	_, err := parseLocation(`{latitude:12.9}`)
	assert.Error(t, err)
}

func TestParseLocation_Empty(t *testing.T) {
	loc, err := parseLocation("")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestParseLocation_MissingCoordinate(t *testing.T) {
	loc, err := parseLocation(`{"latitude":12.9}`)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.NotNil(t, loc.Latitude)
	assert.Nil(t, loc.Longitude)
}

func TestMissingFields_Independent(t *testing.T) {
	lat, lng := 12.9, 77.6
	loc := &locationInput{Latitude: &lat, Longitude: &lng}

	missing := missingFields("", "desc", loc, "Road Infrastructure", "")
	assert.True(t, missing["title"])
	assert.False(t, missing["description"])
	assert.False(t, missing["location"])
	assert.False(t, missing["issueType"])
	assert.True(t, missing["department"])
}

func TestMissingFields_LocationWithoutLongitude(t *testing.T) {
	lat := 12.9
	loc := &locationInput{Latitude: &lat}

	missing := missingFields("Pothole on MG Road", "desc", loc, "Road Infrastructure", "PWD")
	assert.True(t, missing["location"])
	assert.False(t, missing["title"])
}

func TestMissingFields_NilLocation(t *testing.T) {
	missing := missingFields("Pothole on MG Road", "desc", nil, "Road Infrastructure", "PWD")
	assert.True(t, missing["location"])
}

func TestAnyMissing(t *testing.T) {
	assert.False(t, anyMissing(map[string]bool{"a": false, "b": false}))
	assert.True(t, anyMissing(map[string]bool{"a": false, "b": true}))
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".png", safeExt("photo.PNG"))
	assert.Equal(t, "", safeExt("noextension"))
	assert.Equal(t, ".notanex", safeExt("evil.notanextension"))
}

func TestSafeExt_MultiByteRuneBoundary(t *testing.T) {
	got := safeExt("clip.média-longue")
	assert.True(t, utf8.ValidString(got), "truncation split a multi-byte rune: %q", got)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 8)
}

func TestRandString_Length(t *testing.T) {
	assert.Len(t, randString(6), 6)
	assert.Len(t, randString(5), 5)
	assert.Len(t, randString(0), 6)
}
