package hours

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", "0"},
		{"   ", "0"},
		{"2:30:00", "2.5"},
		{"02:30:00", "2.5"},
		{"0:15:00", "0.25"},
		{"10:00:00", "10"},
		{"1.75", "1.75"},
		{"0.00", "0"},
		{"60", "60"},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		require.NoError(t, err, "Parse(%q)", c.input)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"Parse(%q) = %s, want %s", c.input, got, c.want)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"abc", "1:2", "1:60:00", "1:00:61", "x:00:00", "-2.5"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrMalformedDuration, "Parse(%q)", input)
	}
}

func TestParsePtr_Nil(t *testing.T) {
	got, err := ParsePtr(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseLenient(t *testing.T) {
	bad := "abc"
	assert.True(t, ParseLenient(&bad).IsZero())

	good := "2:30:00"
	assert.True(t, ParseLenient(&good).Equal(decimal.RequireFromString("2.5")))

	assert.True(t, ParseLenient(nil).IsZero())
}

func TestCeil(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0.016", "1"}, // one minute still counts as a full hour
		{"0", "0"},
		{"-0.5", "0"},
		{"1.0", "1"},
		{"1.01", "2"},
		{"4", "4"},
	}
	for _, c := range cases {
		got := Ceil(decimal.RequireFromString(c.input))
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"Ceil(%s) = %s, want %s", c.input, got, c.want)
	}
}

func TestCeilDuration(t *testing.T) {
	assert.Equal(t, "1", CeilDuration(time.Minute).String())
	assert.Equal(t, "1", CeilDuration(30*time.Minute).String())
	assert.Equal(t, "1", CeilDuration(time.Hour).String())
	assert.Equal(t, "2", CeilDuration(time.Hour+time.Second).String())
	assert.Equal(t, "0", CeilDuration(0).String())
	assert.Equal(t, "0", CeilDuration(-time.Hour).String())
}
