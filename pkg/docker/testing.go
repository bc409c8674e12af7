package docker

import (
	"os/exec"
	"testing"
)

// SkipIfUnavailable skips the test in -short mode or when no Docker daemon is reachable.
func SkipIfUnavailable(t testing.TB) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}
