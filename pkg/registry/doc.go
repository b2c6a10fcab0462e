// Package registry provides a generic, concurrency-safe name index. Modules
// register themselves into one from init() so hosts can look them up by the
// name users write in their configuration.
package registry
