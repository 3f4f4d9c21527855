package thenvoitest

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// Skip helpers for conditional test execution.
//
//	func TestAgainstRealAPI(t *testing.T) {
//	    thenvoitest.SkipWithoutEnv(t, "THENVOI_API_KEY")
//	    ...
//	}

// SkipWithoutEnv skips the test when the environment variable is not set.
func SkipWithoutEnv(t testing.TB, envVar string) {
	t.Helper()
	SkipWithoutEnvReason(t, envVar, fmt.Sprintf("%s environment variable not set", envVar))
}

// SkipWithoutEnvReason skips the test with a custom reason when the
// environment variable is not set.
func SkipWithoutEnvReason(t testing.TB, envVar, reason string) {
	t.Helper()
	if os.Getenv(envVar) == "" {
		t.Skip(reason)
	}
}

// SkipWithoutEnvs skips the test when any of the environment variables is
// not set.
func SkipWithoutEnvs(t testing.TB, envVars ...string) {
	t.Helper()
	var missing []string
	for _, v := range envVars {
		if os.Getenv(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		t.Skipf("missing environment variables: %s", strings.Join(missing, ", "))
	}
}

// SkipInCI skips the test when running in a CI environment (CI=true).
func SkipInCI(t testing.TB) {
	t.Helper()
	if os.Getenv("CI") == "true" {
		t.Skip("skipped in CI environment")
	}
}

// SkipIf skips the test with the given reason when cond is true.
func SkipIf(t testing.TB, cond bool, reason string) {
	t.Helper()
	if cond {
		t.Skip(reason)
	}
}

// RequireRealBackend returns the live backend target from settings, skipping
// the test when it is not configured.
func RequireRealBackend(t testing.TB, s Settings) *RealBackend {
	t.Helper()
	backend, err := s.RealBackend()
	if err != nil {
		t.Skip(err.Error())
	}
	return backend
}
