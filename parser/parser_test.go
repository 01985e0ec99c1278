package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/token"
)

func TestParseLeaves(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		expected string
	}{
		{"item", "|sword|", "|sword|"},
		{"bare item", "sword", "|sword|"},
		{"category", "|@weapons|", "|@weapons|"},
		{"item count", "|coin:5|", "|coin:5|"},
		{"category count", "|@weapons:2|", "|@weapons:2|"},
		{"item percent", "|coin:50%|", "|coin:50%|"},
		{"category percent all", "|@weapons:ALL%|", "|@weapons:100%|"},
		{"category count half", "|@weapons:HALF|", "|@weapons:50|"},
		{"function", "{YamlEnabled(hard_mode)}", "{YamlEnabled(hard_mode)}"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, ok := Parse(tc.src, nil)
			require.True(t, ok)
			assert.Equal(t, tc.expected, logic.CanonicalString(node))
		})
	}
}

func TestParseBinaryRightAssociative(t *testing.T) {
	node, ok := Parse("|a| AND |b| OR |c|", nil)
	require.True(t, ok)
	and, isAnd := node.(*logic.And)
	require.True(t, isAnd)
	assert.Equal(t, "|a|", logic.CanonicalString(and.Left))
	or, isOr := and.Right.(*logic.Or)
	require.True(t, isOr)
	assert.Equal(t, "|b|", logic.CanonicalString(or.Left))
	assert.Equal(t, "|c|", logic.CanonicalString(or.Right))
}

func TestParseAbsorptionAtConstruction(t *testing.T) {
	node, ok := Parse("(|a| AND |b|) OR |a|", nil)
	require.True(t, ok)
	assert.Equal(t, "|a|", logic.CanonicalString(node))
}

func TestParseFunctionWithNestedParens(t *testing.T) {
	node, ok := Parse("{OptAll(|a| AND (|b| OR |c|))}", nil)
	require.True(t, ok)
	fn, isFn := node.(*logic.Function)
	require.True(t, isFn)
	assert.Equal(t, "OptAll", fn.Name)
	assert.Equal(t, "|a| AND (|b| OR |c|)", fn.Args)
}

type collectingSink struct {
	errs []*ParseError
}

func (s *collectingSink) ReportParseError(err *ParseError) {
	s.errs = append(s.errs, err)
}

func TestParseErrorReporting(t *testing.T) {
	sink := &collectingSink{}
	node, ok := Parse("|sword", sink)
	assert.False(t, ok)
	assert.Nil(t, node)
	require.Len(t, sink.errs, 1)
	assert.Equal(t, 1, sink.errs[0].LineNumber)
}

func TestParseRoundTrip(t *testing.T) {
	testCases := []string{
		"|sword|",
		"|@weapons:2|",
		"|a| AND |b| OR |c|",
		"{YamlEnabled(hard_mode)}",
	}
	for _, src := range testCases {
		node, ok := Parse(src, nil)
		require.True(t, ok)
		reparsed, ok := Parse(logic.CanonicalString(node), nil)
		require.True(t, ok)
		assert.True(t, logic.Equal(node, reparsed))
	}
}

func TestTokenizeParseConsistency(t *testing.T) {
	tokens := token.Tokenize("|a| AND |b|")
	assert.Equal(t, token.KindEOL, tokens[len(tokens)-1].Kind)
}
