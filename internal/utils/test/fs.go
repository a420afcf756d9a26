package testutils

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// TempDir creates a temporary directory that is removed when the test ends
func TempDir(t *testing.T, name string) string {
	t.Helper()

	dir, err := ioutil.TempDir("", name)
	if err != nil {
		t.Fatalf("failed to create temp dir: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// SetHome points $HOME at the provided directory for the remainder of the test,
// bypassing the homedir cache so the swap takes effect immediately
func SetHome(t *testing.T, dir string) {
	t.Helper()

	origHome := os.Getenv("HOME")
	homedir.DisableCache = true
	os.Setenv("HOME", dir)

	t.Cleanup(func() {
		homedir.DisableCache = false
		os.Setenv("HOME", origHome)
	})
}
