package utils_test

import (
	"testing"
)

// testFixture provides test utilities for utils package tests
type testFixture struct {
	home string
}

// setupTest isolates the configuration from the user's home and environment.
func setupTest(t *testing.T) *testFixture {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PKG_CONFIG", "")
	t.Setenv("WRAP_PKG_CONFIG_TOOL", "")
	t.Setenv("WRAP_PKG_CONFIG_DEBUG", "")
	t.Setenv("WRAP_PKG_CONFIG_LOG_LEVEL", "")

	return &testFixture{
		home: home,
	}
}

func (f *testFixture) tearDown() {
	// t.TempDir and t.Setenv clean up after themselves
}
