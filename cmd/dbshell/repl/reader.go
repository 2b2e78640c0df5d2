// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package repl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineReader supplies input lines to a [Shell]. ReadLine returns
// io.EOF when input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

// maxLineLength bounds a single piped input line.
const maxLineLength = 1 << 20

// Scanner reads newline-separated lines without printing a prompt.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner returns a LineReader over r. Trailing carriage returns
// are removed so CRLF scripts behave like LF ones.
func NewScanner(r io.Reader) *Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Scanner{scanner: scanner}
}

// ReadLine returns the next line without its terminator.
func (s *Scanner) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	line := s.scanner.Text()
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

// SetPrompt does nothing; piped input is not prompted.
func (s *Scanner) SetPrompt(string) {}

// Terminal is an interactive line editor on a raw-mode terminal.
// Output written through it has "\n" translated to "\r\n", so all
// command output must go through Terminal while it is open. Ctrl-D on
// an empty line ends input; Ctrl-C discards the line being edited.
type Terminal struct {
	*term.Terminal
	fd    int
	state *term.State
}

// IsTerminal reports whether file is connected to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// OpenTerminal switches input to raw mode and returns a line editor
// that reads from input and echoes to output. The caller must Close
// the Terminal to restore the previous terminal state.
func OpenTerminal(input *os.File, output io.Writer) (*Terminal, error) {
	fd := int(input.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal raw mode: %w", err)
	}

	editor := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{&clearOnInterrupt{reader: input}, output}, "")
	if width, height, err := term.GetSize(fd); err == nil {
		editor.SetSize(width, height)
	}

	return &Terminal{Terminal: editor, fd: fd, state: state}, nil
}

// Close restores the terminal state saved by OpenTerminal.
func (t *Terminal) Close() error {
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

var (
	interruptKey  = []byte{0x03}       // Ctrl-C
	clearLineKeys = []byte{0x05, 0x15} // Ctrl-E, Ctrl-U
)

// clearOnInterrupt rewrites Ctrl-C as Ctrl-E Ctrl-U (move to end of
// line, erase to start). term.Terminal ends input on Ctrl-C before any
// callback sees the key, so the rewrite happens on the raw bytes.
type clearOnInterrupt struct {
	reader  io.Reader
	pending []byte
	err     error
}

func (c *clearOnInterrupt) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(c.pending) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		buffer := make([]byte, len(p))
		n, err := c.reader.Read(buffer)
		c.pending = bytes.ReplaceAll(buffer[:n], interruptKey, clearLineKeys)
		c.err = err
	}
	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}
