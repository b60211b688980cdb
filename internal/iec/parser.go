package iec

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"hash"
	"io"
	"strings"
)

// Scanner reads located variable declarations from an input stream, one
// line at a time, in file order. Every raw line (terminator stripped) is
// fed into a running MD5 so that the generated output can carry a content
// checksum of the input. The digest is not security sensitive; it only
// detects that the input text changed between builds.
type Scanner struct {
	lines *bufio.Scanner
	sum   hash.Hash
	line  int
}

// NewScanner wraps r in a declaration scanner with a fresh running
// checksum.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		lines: bufio.NewScanner(r),
		sum:   md5.New(),
	}
}

// Next returns the next declaration in file order. It returns io.EOF once
// the input is exhausted. A non-blank line that is not a located variable
// declaration aborts with a line-numbered error; every returned declaration
// has a non-empty name and type.
func (s *Scanner) Next() (Declaration, error) {
	for s.lines.Scan() {
		s.line++
		line := s.lines.Text()
		s.sum.Write([]byte(line))

		if strings.TrimSpace(line) == "" {
			continue
		}

		typ, name, err := splitArgs(line)
		if err != nil {
			return Declaration{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		decl, err := DecodeAddress(name)
		if err != nil {
			return Declaration{}, fmt.Errorf("line %d: %w", s.line, err)
		}
		decl.Type = typ
		return decl, nil
	}
	if err := s.lines.Err(); err != nil {
		return Declaration{}, err
	}
	return Declaration{}, io.EOF
}

// Line reports the number of the most recently consumed input line.
func (s *Scanner) Line() int {
	return s.line
}

// Sum finalizes the running content checksum. It must be called only after
// the input is exhausted.
func (s *Scanner) Sum() [md5.Size]byte {
	var digest [md5.Size]byte
	s.sum.Sum(digest[:0])
	return digest
}

// splitArgs extracts the first two comma-separated arguments of the
// macro-style __LOCATED_VAR(type, name, ...) invocation. Trailing
// arguments, if any, are ignored; the name may also be closed directly by
// the terminating parenthesis.
func splitArgs(line string) (typ, name string, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return "", "", invalidDeclaration(line)
	}
	args := line[open+1:]

	comma := strings.IndexByte(args, ',')
	if comma < 0 {
		return "", "", invalidDeclaration(line)
	}
	typ = strings.TrimSpace(args[:comma])

	rest := args[comma+1:]
	end := strings.IndexAny(rest, ",)")
	if end < 0 {
		return "", "", invalidDeclaration(line)
	}
	name = strings.TrimSpace(rest[:end])

	if typ == "" || name == "" {
		return "", "", invalidDeclaration(line)
	}
	return typ, name, nil
}

func invalidDeclaration(line string) error {
	return fmt.Errorf("invalid located variable declaration: %q", strings.TrimSpace(line))
}
