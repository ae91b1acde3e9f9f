package main

import (
	gomath "math"
	"path/filepath"
)

// filepathGlob lists the yaml template files in a directory.
func filepathGlob(dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(dir, "*.yaml"))
}

func sin32(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}

func cos32(x float32) float32 {
	return float32(gomath.Cos(float64(x)))
}
