package types

// OutcomeKind enumerates why a module render ended the way it did.
type OutcomeKind int

const (
	// OutcomeRendered means the module produced segments.
	OutcomeRendered OutcomeKind = iota
	// OutcomeDisabled means the user switched the module off.
	OutcomeDisabled
	// OutcomeNotInProject means the module does not apply here (no
	// project, tool missing or the tool reported no binding).
	OutcomeNotInProject
	// OutcomeMalformedOutput means the external tool answered with
	// something that could not be decoded.
	OutcomeMalformedOutput
	// OutcomeTemplateError means the format string could not be rendered.
	OutcomeTemplateError
)

var outcomeKindNames = map[OutcomeKind]string{
	OutcomeRendered:        "rendered",
	OutcomeDisabled:        "disabled",
	OutcomeNotInProject:    "not-in-project",
	OutcomeMalformedOutput: "malformed-output",
	OutcomeTemplateError:   "template-error",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the internal result of a module render. Hosts only ever see
// it through Result, which collapses it to "absent" or "rendered".
type Outcome struct {
	Kind     OutcomeKind
	Segments Segments
	Err      error
}

// Rendered builds a rendered outcome.
func Rendered(segments Segments) Outcome {
	return Outcome{Kind: OutcomeRendered, Segments: segments}
}

// Absent builds a non-rendering outcome of the given kind.
func Absent(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind}
}

// TemplateError builds an outcome for a format string that failed to render.
func TemplateError(err error) Outcome {
	return Outcome{Kind: OutcomeTemplateError, Err: err}
}

// Result is the host-visible view of the outcome: the segments and true
// when the module rendered at least one segment, nil and false otherwise.
func (o Outcome) Result() (Segments, bool) {
	if o.Kind != OutcomeRendered || len(o.Segments) == 0 {
		return nil, false
	}
	return o.Segments, true
}
