package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by a CLI
// flag, or from stdin when the flag is empty or "-".
type FileReader[T any] struct {
	name  string
	usage string
	value string

	stdin io.Reader
}

// NewFileReader creates a FileReader bound to a string flag called name.
func NewFileReader[T any](name, usage string) *FileReader[T] {
	return &FileReader[T]{name: name, usage: usage}
}

// Flag returns the CLI flag that sets the input path.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        fr.name,
		Usage:       fr.usage,
		Destination: &fr.value,
	}
}

// Set assigns the input path directly.
func (fr *FileReader[T]) Set(path string) { fr.value = path }

// FromStdin reports whether Read will consume stdin.
func (fr *FileReader[T]) FromStdin() bool {
	return fr.value == "" || fr.value == "-"
}

// Read opens the configured source and decodes it.
func (fr *FileReader[T]) Read() (T, error) {
	var (
		input  T
		reader io.Reader
	)

	if !fr.FromStdin() {
		f, err := os.Open(fr.value)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		reader = fr.stdin
		if reader == nil {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return input, fmt.Errorf("no input provided (stdin is a terminal); use --%s or pipe JSON input", fr.name)
			}
			reader = os.Stdin
		}
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
