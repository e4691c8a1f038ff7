package dictation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a transcription for grading. Hangul is
// composed to NFC so typed jamo and precomposed syllables compare
// equal, sentence punctuation (. , ! ?) is dropped and all whitespace
// is removed. An empty or whitespace-only input yields "".
//
// Two transcriptions match if and only if their normalized forms are
// byte-equal. There is no partial credit and no fuzzy matching.
func Normalize(text string) string {
	composed := norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		switch {
		case r == '.' || r == ',' || r == '!' || r == '?':
			// dictation ignores sentence punctuation
		case unicode.IsSpace(r):
			// spacing mistakes are not graded
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match reports whether a transcription matches the target sentence
// under Normalize. This is the sole grading rule.
func Match(answer, target string) bool {
	return Normalize(answer) == Normalize(target)
}
