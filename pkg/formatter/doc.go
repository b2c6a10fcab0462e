// Package formatter renders prompt format strings into styled segments.
//
// A format string mixes literal text with placeholders:
//
//	on [$symbol$project_name( \($environment_name\))]($style)
//
//   - $name or ${name} is a variable, resolved by the caller.
//   - [text](style) draws text in a style. The style part may itself
//     reference variables ($style) that the style resolver supplies.
//   - (text) is a conditional group. It is dropped as a whole when any
//     variable inside it is unresolved or empty.
//   - \ escapes any of \ $ [ ] ( ).
//
// Callers build a StringFormatter once per render, attach resolvers with
// MapMeta, MapStyle and Map, and call Parse. Meta variables are expanded
// before value variables: a meta value is itself a format string.
package formatter
