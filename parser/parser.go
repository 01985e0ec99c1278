// Package parser implements the recursive-descent grammar described in
// spec.md §4.2: it consumes a token.Token stream and produces a shared
// logic.Node expression DAG, routing every AND/OR construction through
// the package logic smart constructors so that two observationally
// equivalent requires-strings are always structurally equal.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/token"
)

// ParseError describes a single parse failure, carrying enough context
// for a host UI to show the user exactly what went wrong (spec.md §4.2,
// §6).
type ParseError struct {
	Title       string
	Description string
	// Window is the failing token plus up to one token on either side.
	Window []token.Token
	// SourceLine is the reconstructed line of source text containing
	// the failing token.
	SourceLine string
	// LineNumber is the 1-based line number of the failing token.
	LineNumber int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d): %s\n%s", e.Title, e.LineNumber, e.Description, e.SourceLine)
}

// ErrorSink receives parse diagnostics. Per spec.md §6/§9, the source
// implementation fires this callback asynchronously and fire-and-
// forget; this implementation instead invokes it synchronously before
// Parse returns, which is the simpler of the two options the spec's
// Open Questions leave undecided and is sufficient since the core is
// single-threaded (spec.md §5).
type ErrorSink interface {
	ReportParseError(err *ParseError)
}

// ErrorSinkFunc adapts a plain function to ErrorSink.
type ErrorSinkFunc func(err *ParseError)

func (f ErrorSinkFunc) ReportParseError(err *ParseError) { f(err) }

// Parse tokenizes and parses src, returning the resulting expression
// DAG. If src is empty (after trimming whitespace), Parse returns a
// nil Node, the absent sentinel, since a missing requires-string
// means no constraint (spec.md §7 item 3: missing data degrades to
// vacuous satisfaction), not a parse error.
//
// On any grammar mismatch Parse reports through sink (if non-nil) and
// returns (nil, false), matching spec.md §4.2: "On any mismatch, the
// parser reports via the optional error callback... and returns a null
// result."
func Parse(src string, sink ErrorSink) (logic.Node, bool) {
	if strings.TrimSpace(src) == "" {
		return nil, true
	}

	tokens := token.Tokenize(src)
	p := &parser{tokens: tokens, src: src, sink: sink}

	node, ok := p.parseBinary()
	if !ok {
		return nil, false
	}

	cur := p.current()
	if !cur.IsEOL() || p.pos+1 != len(p.tokens) {
		p.fail(cur, "Unexpected trailing input", "Expected end of expression")
		return nil, false
	}

	return node, true
}

type parser struct {
	tokens []token.Token
	pos    int
	src    string
	sink   ErrorSink
}

func (p *parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.KindEOL}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind token.Kind) (token.Token, bool) {
	t := p.current()
	if t.Kind != kind {
		p.fail(t, "Unexpected token", fmt.Sprintf("Expected %s, found %s", kind, t.Kind))
		return token.Token{}, false
	}
	return p.advance(), true
}

// parseBinary implements `binary := unary ( (AND | OR) binary )?`.
// AND/OR are right-associative and of equal precedence; the simplifier
// normalises the result rather than the grammar enforcing precedence.
func (p *parser) parseBinary() (logic.Node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	switch p.current().Kind {
	case token.KindAnd:
		p.advance()
		right, ok := p.parseBinary()
		if !ok {
			return nil, false
		}
		return logic.NewAnd(left, right), true
	case token.KindOr:
		p.advance()
		right, ok := p.parseBinary()
		if !ok {
			return nil, false
		}
		return logic.NewOr(left, right), true
	default:
		return left, true
	}
}

// parseUnary implements `unary := pipe | curly | '(' binary ')'`, plus
// the special case where a bare Ident that is the whole token stream
// (first token, followed by EOL) is accepted as an Item (spec.md §4.2).
func (p *parser) parseUnary() (logic.Node, bool) {
	switch p.current().Kind {
	case token.KindPipe:
		return p.parsePipe()
	case token.KindLeftCurly:
		return p.parseCurly()
	case token.KindLeftParen:
		p.advance()
		inner, ok := p.parseBinary()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KindRightParen); !ok {
			return nil, false
		}
		return logic.NewGrouping(inner), true
	case token.KindIdent:
		start := p.pos
		ident := p.advance()
		if start == 0 && p.current().IsEOL() {
			return &logic.Item{Name: ident.Text}, true
		}
		p.fail(ident, "Unexpected identifier", "A bare identifier is only valid as the entire expression")
		return nil, false
	default:
		cur := p.current()
		p.fail(cur, "Unexpected token", fmt.Sprintf("Expected '|', '{', '(' or an identifier, found %s", cur.Kind))
		return nil, false
	}
}

// parsePipe implements:
//
//	pipe := '|' ['@'] Ident [':' (ALL | HALF | Ident) ['%']] '|'
func (p *parser) parsePipe() (logic.Node, bool) {
	if _, ok := p.expect(token.KindPipe); !ok {
		return nil, false
	}

	isCategory := false
	if p.current().Kind == token.KindAt {
		p.advance()
		isCategory = true
	}

	nameTok, ok := p.expect(token.KindIdent)
	if !ok {
		return nil, false
	}
	name := nameTok.Text

	if p.current().Kind == token.KindColon {
		p.advance()

		var count int
		switch p.current().Kind {
		case token.KindAll:
			p.advance()
			count = 100
		case token.KindHalf:
			p.advance()
			count = 50
		case token.KindIdent:
			numTok := p.advance()
			n, err := strconv.Atoi(numTok.Text)
			if err != nil {
				p.fail(numTok, "Invalid quantity", "Expected ALL, HALF, or an integer")
				return nil, false
			}
			count = n
		default:
			cur := p.current()
			p.fail(cur, "Invalid quantity", "Expected ALL, HALF, or an integer")
			return nil, false
		}

		isPercent := false
		if p.current().Kind == token.KindPercent {
			p.advance()
			isPercent = true
		}

		if _, ok := p.expect(token.KindPipe); !ok {
			return nil, false
		}

		switch {
		case isCategory && isPercent:
			return &logic.CategoryPercent{Name: name, Percent: count}, true
		case isCategory && !isPercent:
			return &logic.CategoryCount{Name: name, Count: count}, true
		case !isCategory && isPercent:
			return &logic.ItemPercent{Name: name, Percent: count}, true
		default:
			return &logic.ItemCount{Name: name, Count: count}, true
		}
	}

	if _, ok := p.expect(token.KindPipe); !ok {
		return nil, false
	}

	if isCategory {
		return &logic.Category{Name: name}, true
	}
	return &logic.Item{Name: name}, true
}

// parseCurly implements `curly := '{' Ident '(' Ident ')' '}'`.
func (p *parser) parseCurly() (logic.Node, bool) {
	if _, ok := p.expect(token.KindLeftCurly); !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.KindIdent)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KindLeftParen); !ok {
		return nil, false
	}

	args := ""
	if p.current().Kind == token.KindIdent {
		args = p.advance().Text
	}

	if _, ok := p.expect(token.KindRightParen); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KindRightCurly); !ok {
		return nil, false
	}

	return &logic.Function{Name: nameTok.Text, Args: args}, true
}

// fail reports a parse error through the sink, reconstructing the
// three-token window and the source line per spec.md §4.2.
func (p *parser) fail(bad token.Token, title, description string) {
	if p.sink == nil {
		return
	}

	window := p.window(bad)
	line, lineNumber := p.lineContext(bad.Pos)

	p.sink.ReportParseError(&ParseError{
		Title:       title,
		Description: description,
		Window:      window,
		SourceLine:  line,
		LineNumber:  lineNumber,
	})
}

// window returns up to three tokens centered on the failing token: the
// token before it, the failing token itself, and the token after. The
// failing token is either the current one or, when it was already
// consumed, the one just before it.
func (p *parser) window(bad token.Token) []token.Token {
	center := p.pos
	if center > 0 && center <= len(p.tokens) && p.tokens[center-1] == bad {
		center--
	}
	var w []token.Token
	if center > 0 {
		w = append(w, p.tokens[center-1])
	}
	w = append(w, bad)
	if center+1 < len(p.tokens) {
		w = append(w, p.tokens[center+1])
	}
	return w
}

// lineContext reconstructs the source line containing byte offset pos
// and returns its 1-based line number.
func (p *parser) lineContext(pos int) (string, int) {
	if pos > len(p.src) {
		pos = len(p.src)
	}

	lineStart := strings.LastIndexByte(p.src[:pos], '\n') + 1
	lineEndOffset := strings.IndexByte(p.src[pos:], '\n')
	var lineEnd int
	if lineEndOffset < 0 {
		lineEnd = len(p.src)
	} else {
		lineEnd = pos + lineEndOffset
	}

	lineNumber := 1 + strings.Count(p.src[:lineStart], "\n")
	return p.src[lineStart:lineEnd], lineNumber
}
