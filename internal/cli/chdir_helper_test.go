package cli

import (
	"os"
	"testing"
)

// changeWorkingDirectory mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func changeWorkingDirectory(t *testing.T, directory string) {
	t.Helper()
	previousDirectory, getwdError := os.Getwd()
	if getwdError != nil {
		t.Fatal(getwdError)
	}
	if chdirError := os.Chdir(directory); chdirError != nil {
		t.Fatal(chdirError)
	}
	t.Setenv("PWD", directory)
	t.Cleanup(func() {
		if restoreError := os.Chdir(previousDirectory); restoreError != nil {
			t.Fatal(restoreError)
		}
	})
}
