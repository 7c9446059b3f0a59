package domain

import "strings"

// ChordSheet is the transposable part of a chords document.
// It is not safe for concurrent use.
type ChordSheet struct {
	vocabulary    []string
	base          string
	transposition int
	content       string
	unresolved    []string
}

// TransposeResult reports the outcome of a transposition.
type TransposeResult struct {
	// Transposition is the sheet's total shift in [0, 12).
	Transposition int

	// Unresolved counts vocabulary tokens that kept their original
	// spelling because no note name could be matched.
	Unresolved int

	// UnresolvedTokens lists those tokens in vocabulary order.
	UnresolvedTokens []string
}

// NewChordSheet builds a sheet from raw content and the chord vocabulary.
// Duplicate vocabulary entries are dropped, first occurrence kept.
func NewChordSheet(rawContent string, vocabulary []string) *ChordSheet {
	seen := make(map[string]struct{}, len(vocabulary))
	vocab := make([]string, 0, len(vocabulary))
	for _, tok := range vocabulary {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		vocab = append(vocab, tok)
	}

	s := &ChordSheet{
		vocabulary: vocab,
		base:       StripTabMarkup(rawContent),
	}
	s.render()
	return s
}

// Vocabulary returns the distinct chord tokens in source order.
func (s *ChordSheet) Vocabulary() []string {
	out := make([]string, len(s.vocabulary))
	copy(out, s.vocabulary)
	return out
}

// Base returns the content with chord delimiters intact.
func (s *ChordSheet) Base() string {
	return s.base
}

// Transposition returns the current shift in [0, 12).
func (s *ChordSheet) Transposition() int {
	return s.transposition
}

// Content returns the rendered content at the current transposition.
func (s *ChordSheet) Content() string {
	return s.content
}

// Transpose shifts the sheet by shift semitones relative to its current
// transposition and re-renders from the base.
func (s *ChordSheet) Transpose(shift int) TransposeResult {
	return s.SetTransposition(s.transposition + shift)
}

// SetTransposition sets the absolute transposition and re-renders from
// the base. Zero restores the original chords.
func (s *ChordSheet) SetTransposition(n int) TransposeResult {
	s.transposition = NormalizeShift(n)
	s.render()
	return s.result()
}

// Result returns the outcome of the last render.
func (s *ChordSheet) Result() TransposeResult {
	return s.result()
}

func (s *ChordSheet) result() TransposeResult {
	tokens := make([]string, len(s.unresolved))
	copy(tokens, s.unresolved)
	return TransposeResult{
		Transposition:    s.transposition,
		Unresolved:       len(tokens),
		UnresolvedTokens: tokens,
	}
}

// render substitutes every delimited vocabulary token in the base with
// its transposed spelling. Substitution matches on token text, so every
// occurrence of the same literal chord is replaced identically.
func (s *ChordSheet) render() {
	s.unresolved = s.unresolved[:0]

	content := s.base
	for _, tok := range s.vocabulary {
		replacement, ok := TransposeChord(tok, s.transposition)
		if !ok {
			s.unresolved = append(s.unresolved, tok)
		}
		if s.transposition == 0 {
			continue
		}
		content = strings.ReplaceAll(content, ChordOpen+tok+ChordClose, replacement)
	}
	s.content = StripChordMarkup(content)
}
