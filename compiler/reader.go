package compiler

import "os"

// ReadSource reads an input file's full contents as runes for the scanner.
// It is a thin collaborator: the only stage that touches the filesystem on
// the input side, so I/O failures are wrapped once here rather than at
// every call site.
func ReadSource(path string) ([]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read " + path, Err: err}
	}
	return []rune(string(data)), nil
}
