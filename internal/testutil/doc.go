// Package testutil provides the shared harness used by the integration tests.
package testutil
