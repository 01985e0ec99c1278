package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeBasic(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected []Kind
	}{
		{
			name:     "empty",
			src:      "",
			expected: []Kind{KindEOL},
		},
		{
			name:     "bare item",
			src:      "|sword|",
			expected: []Kind{KindPipe, KindIdent, KindPipe, KindEOL},
		},
		{
			name:     "bare identifier without pipes",
			src:      "sword",
			expected: []Kind{KindIdent, KindEOL},
		},
		{
			name:     "category",
			src:      "|@weapons|",
			expected: []Kind{KindPipe, KindAt, KindIdent, KindPipe, KindEOL},
		},
		{
			name:     "count",
			src:      "|coin:5|",
			expected: []Kind{KindPipe, KindIdent, KindColon, KindIdent, KindPipe, KindEOL},
		},
		{
			name:     "percent",
			src:      "|coin:50%|",
			expected: []Kind{KindPipe, KindIdent, KindColon, KindIdent, KindPercent, KindPipe, KindEOL},
		},
		{
			name:     "all keyword",
			src:      "|@weapons:ALL|",
			expected: []Kind{KindPipe, KindAt, KindIdent, KindColon, KindAll, KindPipe, KindEOL},
		},
		{
			name:     "and or",
			src:      "|a| AND |b| OR |c|",
			expected: []Kind{KindPipe, KindIdent, KindPipe, KindAnd, KindPipe, KindIdent, KindPipe, KindOr, KindPipe, KindIdent, KindPipe, KindEOL},
		},
		{
			name:     "grouping",
			src:      "(|a| AND |b|) OR |a|",
			expected: []Kind{KindLeftParen, KindPipe, KindIdent, KindPipe, KindAnd, KindPipe, KindIdent, KindPipe, KindRightParen, KindOr, KindPipe, KindIdent, KindPipe, KindEOL},
		},
		{
			name:     "function with args",
			src:      "{YamlEnabled(hard_mode)}",
			expected: []Kind{KindLeftCurly, KindIdent, KindLeftParen, KindIdent, KindRightParen, KindRightCurly, KindEOL},
		},
		{
			name:     "function nested parens in args",
			src:      "{OptAll(|a| AND (|b| OR |c|))}",
			expected: []Kind{KindLeftCurly, KindIdent, KindLeftParen, KindIdent, KindRightParen, KindRightCurly, KindEOL},
		},
		{
			name:     "bare or standing alone",
			src:      "or ",
			expected: []Kind{KindIdent, KindEOL},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.src)
			kinds := make([]Kind, len(tokens))
			for i, tok := range tokens {
				kinds[i] = tok.Kind
			}
			assert.Equal(t, tc.expected, kinds)
		})
	}
}

func TestTokenizeFunctionArgsPreserved(t *testing.T) {
	tokens := Tokenize("{ItemValue(coin:5)}")
	var argText string
	for _, tok := range tokens {
		if tok.Kind == KindIdent && tok.Text == "coin:5" {
			argText = tok.Text
		}
	}
	assert.Equal(t, "coin:5", argText)
}

func TestDetokenizeRoundTrip(t *testing.T) {
	testCases := []string{
		"|sword|",
		"|@weapons:2|",
		"(|a| AND |b|) OR |a|",
		"{YamlEnabled(hard_mode)}",
	}
	for _, src := range testCases {
		tokens := Tokenize(src)
		got := Detokenize(tokens)
		// Re-tokenizing the detokenized string should produce the same
		// kind sequence (whitespace around AND/OR may be normalized).
		assert.Equal(t, kindsOf(Tokenize(src)), kindsOf(Tokenize(got)))
	}
}

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}
