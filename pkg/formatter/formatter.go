package formatter

import (
	"strings"

	"github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/style"
	"github.com/arthur-debert/promptline/pkg/types"
)

// MetaResolver maps a variable name to a format string that replaces it.
type MetaResolver func(name string) (string, bool)

// StyleResolver maps a style-part variable to a style string.
type StyleResolver func(name string) (string, bool)

// ValueResolver maps a variable name to its rendered text. Returning false
// marks the variable as unresolved.
type ValueResolver func(name string) (string, bool)

// StringFormatter holds a parsed format string and the resolvers that
// give its variables values.
type StringFormatter struct {
	nodes   []Node
	styleFn StyleResolver
	valueFn ValueResolver
	err     error
}

// New parses format. The error is a TEMPLATE_SYNTAX PromptlineError.
func New(format string) (*StringFormatter, error) {
	nodes, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return &StringFormatter{nodes: nodes}, nil
}

// MapMeta replaces every variable fn knows with its parsed meta value. A
// meta value that fails to parse is reported by Parse.
func (f *StringFormatter) MapMeta(fn MetaResolver) *StringFormatter {
	if f.err == nil {
		f.nodes, f.err = expandMeta(f.nodes, fn)
	}
	return f
}

// MapStyle sets the resolver for variables in style parts.
func (f *StringFormatter) MapStyle(fn StyleResolver) *StringFormatter {
	f.styleFn = fn
	return f
}

// Map sets the resolver for value variables.
func (f *StringFormatter) Map(fn ValueResolver) *StringFormatter {
	f.valueFn = fn
	return f
}

// Variables returns the value variables the format references, in order of
// first appearance.
func (f *StringFormatter) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	walkVariables(f.nodes, func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})
	return names
}

// Parse resolves every node and returns the segments in template order.
// defaultStyle applies to text outside any text group and may be nil.
func (f *StringFormatter) Parse(defaultStyle *types.Style) (types.Segments, error) {
	if f.err != nil {
		return nil, f.err
	}
	segs, _, err := f.evaluate(f.nodes, defaultStyle)
	if err != nil {
		return nil, err
	}
	return segs, nil
}

func expandMeta(nodes []Node, fn MetaResolver) ([]Node, error) {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case Variable:
			value, ok := fn(n.Name)
			if !ok {
				out = append(out, n)
				continue
			}
			children, err := parseFormat(value)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrTemplateSyntax, "meta variable $%s", n.Name)
			}
			out = append(out, MetaVariable{Name: n.Name, Children: children})
		case Conditional:
			children, err := expandMeta(n.Children, fn)
			if err != nil {
				return nil, err
			}
			out = append(out, Conditional{Children: children})
		case TextGroup:
			children, err := expandMeta(n.Children, fn)
			if err != nil {
				return nil, err
			}
			out = append(out, TextGroup{Children: children, Style: n.Style})
		default:
			out = append(out, n)
		}
	}
	return out, nil
}

// evaluate renders nodes post-order. missing reports whether any variable
// below went unresolved; the nearest enclosing Conditional consumes it.
func (f *StringFormatter) evaluate(nodes []Node, current *types.Style) (segs types.Segments, missing bool, err error) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Literal:
			segs = append(segs, types.NewSegment(n.Text, current))
		case Variable:
			value, ok := f.resolveValue(n.Name)
			if !ok {
				missing = true
				continue
			}
			segs = append(segs, types.NewSegment(value, current))
		case MetaVariable:
			child, childMissing, err := f.evaluate(n.Children, current)
			if err != nil {
				return nil, false, err
			}
			missing = missing || childMissing
			segs = append(segs, child...)
		case Conditional:
			// a pruned group is never evaluated, so styles inside it are
			// not parsed either
			if f.unresolved(n.Children) {
				continue
			}
			child, _, err := f.evaluate(n.Children, current)
			if err != nil {
				return nil, false, err
			}
			segs = append(segs, child...)
		case TextGroup:
			groupStyle, err := f.resolveStyle(n.Style, current)
			if err != nil {
				return nil, false, err
			}
			child, childMissing, err := f.evaluate(n.Children, groupStyle)
			if err != nil {
				return nil, false, err
			}
			missing = missing || childMissing
			segs = append(segs, child...)
		}
	}
	return segs, missing, nil
}

// unresolved reports whether evaluating nodes would leave a variable
// missing. Nested conditionals are skipped since they prune themselves.
func (f *StringFormatter) unresolved(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case Variable:
			if _, ok := f.resolveValue(n.Name); !ok {
				return true
			}
		case MetaVariable:
			if f.unresolved(n.Children) {
				return true
			}
		case TextGroup:
			if f.unresolved(n.Children) {
				return true
			}
		}
	}
	return false
}

// resolveValue treats an empty value the same as an unresolved one.
func (f *StringFormatter) resolveValue(name string) (string, bool) {
	if f.valueFn == nil {
		return "", false
	}
	value, ok := f.valueFn(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// resolveStyle builds the style string of a text group and parses it. An
// empty style string inherits the enclosing style.
func (f *StringFormatter) resolveStyle(nodes []Node, current *types.Style) (*types.Style, error) {
	var spec strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case Literal:
			spec.WriteString(n.Text)
		case Variable:
			var value string
			ok := false
			if f.styleFn != nil {
				value, ok = f.styleFn(n.Name)
			}
			if !ok {
				return nil, errors.Newf(errors.ErrTemplateUnresolved, "unknown style variable $%s", n.Name).
					WithDetail("variable", n.Name)
			}
			spec.WriteString(value)
			spec.WriteString(" ")
		}
	}

	if strings.TrimSpace(spec.String()) == "" {
		return current, nil
	}
	parsed, err := style.Parse(spec.String())
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
