package formatter

// Node is one element of a parsed format string.
type Node interface {
	node()
}

// Literal is plain text, escapes already removed.
type Literal struct {
	Text string
}

// Variable is a $name reference resolved by the value resolver.
type Variable struct {
	Name string
}

// MetaVariable is a variable the meta resolver replaced with a parsed
// sub-format.
type MetaVariable struct {
	Name     string
	Children []Node
}

// Conditional is a (...) group, pruned when any variable inside is missing.
type Conditional struct {
	Children []Node
}

// TextGroup is a [...](style) group. Style holds Literal and Variable
// nodes that concatenate to a style string.
type TextGroup struct {
	Children []Node
	Style    []Node
}

func (Literal) node()      {}
func (Variable) node()     {}
func (MetaVariable) node() {}
func (Conditional) node()  {}
func (TextGroup) node()    {}

// walkVariables calls fn for every value variable in nodes, descending into
// groups and meta expansions but not into style parts.
func walkVariables(nodes []Node, fn func(name string)) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Variable:
			fn(n.Name)
		case MetaVariable:
			walkVariables(n.Children, fn)
		case Conditional:
			walkVariables(n.Children, fn)
		case TextGroup:
			walkVariables(n.Children, fn)
		}
	}
}
