package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetProjectRootDir returns the absolute root directory of the project,
// preferring the PROJECT_ROOT_DIR override, falling back to the location
// of this source file at build time.
func GetProjectRootDir() string {
	if dir, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
		return dir
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		wd, err := os.Getwd()
		if err != nil {
			return "."
		}

		return wd
	}

	return filepath.Join(filepath.Dir(file), "../..")
}
