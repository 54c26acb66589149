package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasics(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{"A1", Position{Row: 0, Col: 0}},
		{"B2", Position{Row: 1, Col: 1}},
		{"Z1", Position{Row: 0, Col: 25}},
		{"AA1", Position{Row: 0, Col: 26}},
		{"AB2", Position{Row: 1, Col: 27}},
		{"A16384", Position{Row: 16383, Col: 0}},
		{"XFD1", Position{Row: 0, Col: 16383}},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		require.True(t, ok, "Parse(%q)", tc.in)
		require.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestParseRejects(t *testing.T) {
	bad := []string{
		"", "A", "1", "A0", "a1", "A1B", " A1", "A1 ", "A-1",
		"A16385",  // row past bounds
		"XFE1",    // column past bounds
		"AAAA1",   // column letters past bounds
		"A001x",   // trailing garbage
	}
	for _, in := range bad {
		_, ok := Parse(in)
		require.False(t, ok, "Parse(%q) should fail", in)
	}
}

func TestParseAcceptsLeadingZeroRows(t *testing.T) {
	got, ok := Parse("A01")
	require.True(t, ok)
	require.Equal(t, Position{Row: 0, Col: 0}, got)
}

func TestFormatRoundTrip(t *testing.T) {
	positions := []Position{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
		{Row: 0, Col: 25},
		{Row: 0, Col: 26},
		{Row: 0, Col: 701},   // ZZ
		{Row: 0, Col: 702},   // AAA
		{Row: 16383, Col: 16383},
	}
	for _, p := range positions {
		s := Format(p)
		back, ok := Parse(s)
		require.True(t, ok, "Parse(Format(%v)) = %q", p, s)
		require.Equal(t, p, back)
	}
	require.Equal(t, "A1", Format(Position{Row: 0, Col: 0}))
	require.Equal(t, "ZZ1", Format(Position{Row: 0, Col: 701}))
	require.Equal(t, "AAA1", Format(Position{Row: 0, Col: 702}))
	require.Equal(t, "XFD16384", Format(Position{Row: 16383, Col: 16383}))
}

func TestIsValid(t *testing.T) {
	require.True(t, Position{Row: 0, Col: 0}.IsValid())
	require.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	require.False(t, Position{Row: -1, Col: 0}.IsValid())
	require.False(t, Position{Row: 0, Col: -1}.IsValid())
	require.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	require.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}

func TestLessIsRowMajor(t *testing.T) {
	a := Position{Row: 0, Col: 5}
	b := Position{Row: 1, Col: 0}
	c := Position{Row: 1, Col: 1}
	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, c.Less(b))
	require.False(t, a.Less(a))
}

func TestStringNeverFails(t *testing.T) {
	require.Equal(t, "B2", Position{Row: 1, Col: 1}.String())
	require.Equal(t, "#INVALID!", Position{Row: -1, Col: 0}.String())
	require.Equal(t, "#INVALID!", Position{Row: MaxRows, Col: 0}.String())
}
