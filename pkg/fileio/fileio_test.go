package fileio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agenthands/pseudoc/pkg/fileio"
)

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "Swap", path: "programa.pseudo", ext: ".cpp", want: "programa.cpp"},
		{name: "No Extension", path: "programa", ext: ".cpp", want: "programa.cpp"},
		{name: "With Directory", path: "dir/sub/p.pseudo", ext: ".cpp", want: "dir/sub/p.cpp"},
		{name: "Dotfile Style", path: "a.b.pseudo", ext: ".cpp", want: "a.b.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileio.ReplaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dir  string
		want string
	}{
		{name: "Working Directory", src: "entrada/p.pseudo", dir: "", want: "p.cpp"},
		{name: "Explicit Dir", src: "entrada/p.pseudo", dir: "salida", want: filepath.Join("salida", "p.cpp")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileio.OutputPath(tt.src, tt.dir, ".cpp"); got != tt.want {
				t.Errorf("OutputPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.pseudo")
	if err := os.WriteFile(path, []byte("Algoritmo T\nFinAlgoritmo"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := fileio.ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if src != "Algoritmo T\nFinAlgoritmo" {
		t.Errorf("unexpected content %q", src)
	}

	if _, err := fileio.ReadSource(filepath.Join(dir, "missing.pseudo")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.pseudo")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := fileio.ReadSource(empty); !errors.Is(err, fileio.ErrEmptySource) {
		t.Errorf("empty file: got %v, want ErrEmptySource", err)
	}
}

func TestWriteOutputFallback(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "fallback.cpp")

	// Primary path inside a directory that does not exist forces the
	// fallback write.
	primary := filepath.Join(dir, "no-such-dir", "out.cpp")

	written, err := fileio.WriteOutput(primary, fallback, "int main() {}\n")
	if err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if written != fallback {
		t.Errorf("written = %q, want fallback %q", written, fallback)
	}

	data, err := os.ReadFile(fallback)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "int main() {}\n" {
		t.Errorf("fallback content = %q", data)
	}
}

func TestWriteOutputPrimary(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "out.cpp")

	written, err := fileio.WriteOutput(primary, filepath.Join(dir, "fb.cpp"), "x")
	if err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if written != primary {
		t.Errorf("written = %q, want %q", written, primary)
	}
	if _, err := os.Stat(filepath.Join(dir, "fb.cpp")); !os.IsNotExist(err) {
		t.Error("fallback file should not exist when the primary write succeeds")
	}
}
