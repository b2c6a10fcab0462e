// Package types defines the core types and interfaces shared by every
// promptline package: the Context a module reads ambient state from,
// the Segment and Style values modules produce, and the Outcome a
// module render resolves to before it is collapsed for the host.
package types
