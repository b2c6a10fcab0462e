// Package testutil provides test doubles for the render Context and a
// fluent helper for module tests.
//
//   - MockContext: testify mock; unexpected calls fail the test
//   - FakeContext: table-backed env, commands and module config
//   - ModuleRenderer: builds a FakeContext and renders one module
//   - CaptureLogs: redirects zerolog into a buffer for log assertions
package testutil
