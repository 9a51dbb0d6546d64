// Package testutil provides shared test helpers: testify mocks of the
// display collaborators, file fixtures and XDG directory isolation.
//
// Helpers fail the test through t.Fatalf instead of returning errors.
package testutil
