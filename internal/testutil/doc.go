// Package testutil holds helpers shared by the test suites of the other
// packages. Production code must not depend on it.
package testutil
