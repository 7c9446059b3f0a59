package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShift(t *testing.T) {
	tests := []struct {
		shift    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{11, 11},
		{12, 0},
		{13, 1},
		{-1, 11},
		{-12, 0},
		{-25, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeShift(tt.shift), "shift %d", tt.shift)
	}
}

func TestTransposeChord(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		shift    int
		expected string
		ok       bool
	}{
		{"plain root up one", "C", 1, "Db", true},
		{"table entry wraps around", "Ab", 1, "A", true},
		{"two-character root", "Bb", 2, "C", true},
		{"quality preserved", "Am7", 3, "Cm7", true},
		{"maj7 on flat root", "Bbmaj7", 1, "Bmaj7", true},
		{"sharp falls back to one character", "C#m7", 1, "Dbm7", true},
		{"slash chord", "C/G", 2, "D/A", true},
		{"slash chord with suffixes", "Bbmaj7/D", 1, "Bmaj7/Eb", true},
		{"sharp bass", "A/C#", 2, "B/D", true},
		{"sharps become flats", "F#", 1, "Gb", true},
		{"negative shift", "C", -1, "B", true},
		{"shift of twelve", "Em", 12, "Em", true},
		{"unknown root kept", "Hm", 1, "Hm", false},
		{"empty token", "", 5, "", false},
		{"unknown bass kept", "C/X", 2, "D/X", false},
		{"unknown root with good bass", "N.C./G", 2, "N.C./A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TransposeChord(tt.token, tt.shift)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestTransposeChord_EveryPitchClassStepsToNext(t *testing.T) {
	classes := PitchClasses()
	for i, p := range classes {
		got, ok := TransposeChord(p+"sus4", 1)
		assert.True(t, ok)
		assert.Equal(t, classes[(i+1)%12]+"sus4", got)
	}
}

func TestPitchClasses_ReturnsCopy(t *testing.T) {
	classes := PitchClasses()
	classes[0] = "X"
	assert.Equal(t, "A", PitchClasses()[0])
}
