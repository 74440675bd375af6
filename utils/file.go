package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"go.viam.com/utils"
)

// ResolveFile returns fn joined onto the repository root, found from the location of this
// source file. Tests use it to load examples/jobs without caring about their working directory.
func ResolveFile(fn string) string {
	//nolint:dogsled
	_, thisFilePath, _, _ := runtime.Caller(0)
	thisDirPath, err := filepath.Abs(filepath.Dir(thisFilePath))
	if err != nil {
		panic(err)
	}
	return filepath.Join(thisDirPath, "..", fn)
}

// RemoveFileNoError removes path if it exists, ignoring any error.
func RemoveFileNoError(path string) {
	utils.UncheckedErrorFunc(func() error {
		if _, err := os.Stat(path); err == nil {
			return os.Remove(path)
		}
		return nil
	})
}
