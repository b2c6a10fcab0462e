package formatter

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/promptline/pkg/errors"
)

const escapable = `\$[]()`

// parser is a recursive-descent parser over the raw format string. pos is
// a byte offset into src.
type parser struct {
	src string
	pos int
}

// parseFormat parses a whole format string into its AST.
func parseFormat(src string) ([]Node, error) {
	p := &parser{src: src}
	nodes, err := p.parseElements(0)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return nodes, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) next() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return r
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrTemplateSyntax, format, args...).
		WithDetail("offset", p.pos).
		WithDetail("format", p.src)
}

// parseElements reads elements until closer (or EOF when closer is 0).
// The closer itself is left for the caller to consume.
func (p *parser) parseElements(closer rune) ([]Node, error) {
	var nodes []Node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Literal{Text: text.String()})
			text.Reset()
		}
	}

	for !p.eof() {
		r := p.peek()
		if r == closer {
			break
		}
		switch r {
		case '\\':
			c, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			text.WriteRune(c)
		case '$':
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, v)
		case '[':
			g, err := p.parseTextGroup()
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, g)
		case '(':
			c, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			flush()
			nodes = append(nodes, c)
		case ']', ')':
			return nil, p.errorf("unexpected %q, escape it as \\%c", r, r)
		default:
			text.WriteRune(p.next())
		}
	}

	if closer != 0 && p.eof() {
		return nil, p.errorf("unclosed group, expected %q", closer)
	}
	flush()
	return nodes, nil
}

func (p *parser) parseEscape() (rune, error) {
	p.next() // backslash
	if p.eof() {
		return 0, p.errorf("dangling escape at end of format")
	}
	r := p.next()
	if !strings.ContainsRune(escapable, r) {
		return 0, p.errorf("cannot escape %q", r)
	}
	return r, nil
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (p *parser) parseName() string {
	start := p.pos
	for !p.eof() && isNameRune(p.peek()) {
		p.next()
	}
	return p.src[start:p.pos]
}

func (p *parser) parseVariable() (Variable, error) {
	p.next() // $
	braced := !p.eof() && p.peek() == '{'
	if braced {
		p.next()
	}
	name := p.parseName()
	if name == "" {
		return Variable{}, p.errorf("expected variable name after $")
	}
	if braced {
		if p.eof() || p.peek() != '}' {
			return Variable{}, p.errorf("unclosed ${%s", name)
		}
		p.next()
	}
	return Variable{Name: name}, nil
}

func (p *parser) parseConditional() (Conditional, error) {
	p.next() // (
	children, err := p.parseElements(')')
	if err != nil {
		return Conditional{}, err
	}
	p.next() // )
	return Conditional{Children: children}, nil
}

func (p *parser) parseTextGroup() (TextGroup, error) {
	p.next() // [
	children, err := p.parseElements(']')
	if err != nil {
		return TextGroup{}, err
	}
	p.next() // ]
	if p.eof() || p.peek() != '(' {
		return TextGroup{}, p.errorf("text group must be followed by a (style)")
	}
	p.next() // (
	style, err := p.parseStyle()
	if err != nil {
		return TextGroup{}, err
	}
	return TextGroup{Children: children, Style: style}, nil
}

// parseStyle reads a style part up to and including its closing paren.
func (p *parser) parseStyle() ([]Node, error) {
	var nodes []Node
	var text strings.Builder

	for {
		if p.eof() {
			return nil, p.errorf("unclosed style, expected ')'")
		}
		switch r := p.peek(); r {
		case ')':
			p.next()
			if text.Len() > 0 {
				nodes = append(nodes, Literal{Text: text.String()})
			}
			return nodes, nil
		case '\\':
			c, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			text.WriteRune(c)
		case '$':
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			if text.Len() > 0 {
				nodes = append(nodes, Literal{Text: text.String()})
				text.Reset()
			}
			nodes = append(nodes, v)
		case '(', '[', ']':
			return nil, p.errorf("unexpected %q in style", r)
		default:
			text.WriteRune(p.next())
		}
	}
}
