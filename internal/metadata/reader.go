package metadata

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// ReadTokens opens path and returns its non-blank lines, trimmed, in order.
func ReadTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	tokens, err := ScanTokens(f)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return tokens, nil
}

// ScanTokens splits r into one token per non-blank line.
func ScanTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	tokens := make([]string, 0, 64)
	for sc.Scan() {
		tok := strings.TrimSpace(sc.Text())
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
