// Package fileio holds the I/O collaborators around the compiler
// core: reading source files, deriving output names and persisting
// generated code.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptySource = errors.New("fileio: source file is empty")

// ReadSource reads a whole source file. An empty file is an error:
// the compiler core expects "no input" to be caught at this boundary.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source %q: %w", path, err)
	}
	if len(data) == 0 {
		return "", ErrEmptySource
	}
	return string(data), nil
}

// ReplaceExt swaps the extension of path for ext, or appends ext when
// path has none.
func ReplaceExt(path, ext string) string {
	old := filepath.Ext(path)
	return strings.TrimSuffix(path, old) + ext
}

// OutputPath derives the generated file's destination from the source
// path: the source's base name with the output extension, under dir.
// An empty dir means the current working directory.
func OutputPath(src, dir, ext string) string {
	name := ReplaceExt(filepath.Base(src), ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// WriteOutput persists generated code at path. When that write fails
// the fallback path is tried before giving up. Returns the path the
// file actually landed at.
func WriteOutput(path, fallback, content string) (string, error) {
	if err := os.WriteFile(path, []byte(content), 0o644); err == nil {
		return path, nil
	}
	if err := os.WriteFile(fallback, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write output %q: %w", fallback, err)
	}
	return fallback, nil
}
