package domain

import "strings"

// pitchClasses is the fixed enharmonic table. All transposed output uses
// these spellings.
var pitchClasses = [12]string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}

// PitchClasses returns a copy of the pitch-class table in order.
func PitchClasses() []string {
	out := make([]string, len(pitchClasses))
	copy(out, pitchClasses[:])
	return out
}

// NormalizeShift reduces a semitone shift to [0, 12).
func NormalizeShift(shift int) int {
	return ((shift % 12) + 12) % 12
}

func pitchIndex(s string) int {
	for i, p := range pitchClasses {
		if p == s {
			return i
		}
	}
	return -1
}

// transposeNote shifts the leading note name of part. The first two
// characters are tried before the first one; a sharp left over after a
// one-character match is dropped since the table has no sharp spellings.
func transposeNote(part string, shift int) (string, bool) {
	if len(part) >= 2 {
		if i := pitchIndex(part[:2]); i >= 0 {
			return pitchClasses[(i+shift)%12] + part[2:], true
		}
	}
	if len(part) >= 1 {
		if i := pitchIndex(part[:1]); i >= 0 {
			rest := strings.TrimPrefix(part[1:], "#")
			return pitchClasses[(i+shift)%12] + rest, true
		}
	}
	return part, false
}

// TransposeChord shifts a chord token such as "Am7" or "Bbmaj7/D" by
// shift semitones. Slash chords are split at the first slash and each
// side is shifted on its own. A side that does not start with a known
// note keeps its original text and the second return value is false.
func TransposeChord(token string, shift int) (string, bool) {
	shift = NormalizeShift(shift)

	root, bass, isSlash := strings.Cut(token, "/")
	newRoot, rootOK := transposeNote(root, shift)
	if !isSlash {
		return newRoot, rootOK
	}

	newBass, bassOK := transposeNote(bass, shift)
	return newRoot + "/" + newBass, rootOK && bassOK
}
