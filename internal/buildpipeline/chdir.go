package buildpipeline

import (
	"fmt"
	"os"
)

// runInDir runs fn with the process working directory switched to dir,
// restoring the previous directory on every exit path. configure must run
// from inside its build directory, and the working directory is
// process-global state, so target builds cannot overlap.
func runInDir(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to read working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to enter %s: %w", dir, err)
	}
	defer func() {
		if restoreErr := os.Chdir(prev); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore working directory: %w", restoreErr)
		}
	}()
	return fn()
}
