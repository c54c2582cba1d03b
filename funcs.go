package main

import (
	"os"
)

// Get the working directory else -> "NAN"
func GetPwd() string {
	path, err := os.Getwd()
	if err != nil {
		return "NAN"
	}
	return path
}

// Write the generated Makefile, fully replacing any previous content.
// A generated build file is meant to be shared, so it gets the
// conventional 0644 rather than a private mode.
func WriteMakefile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
