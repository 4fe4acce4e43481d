// Package terminal reads single keypresses from an interactive terminal and
// turns them into approval decisions.
package terminal

import (
	"context"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/viant/gitsetup/service/approval"
)

const escape = 0x1b

// console abstracts the terminal mode switch so tests can observe it.
type console struct {
	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
}

var defaultConsole = console{
	isTerminal: term.IsTerminal,
	makeRaw:    term.MakeRaw,
	restore:    term.Restore,
}

// KeyReader reads exactly one keypress per call.
type KeyReader struct {
	input   io.Reader
	fd      int
	console console
}

// NewKeyReader creates a reader for input. fd is the descriptor whose mode is
// switched to raw for the duration of a read; pass -1 when input is not
// backed by a terminal.
func NewKeyReader(input io.Reader, fd int) *KeyReader {
	return &KeyReader{input: input, fd: fd, console: defaultConsole}
}

// NewStdinKeyReader creates a reader bound to os.Stdin. Prompts that read
// whole lines must share the same buffered input.
func NewStdinKeyReader(input io.Reader) *KeyReader {
	return NewKeyReader(input, int(os.Stdin.Fd()))
}

// ReadKey blocks until one key arrives and returns the raw bytes read.
// Ctrl+C, q and Q return approval.ErrCancelled. The previous terminal mode is
// restored before ReadKey returns.
func (r *KeyReader) ReadKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var key string
	var err error
	if r.fd >= 0 && r.console.isTerminal(r.fd) {
		key, err = r.readRaw()
	} else {
		key, err = r.readByte()
	}
	if err != nil {
		return "", err
	}
	if approval.IsCancelKey(key) {
		return key, approval.ErrCancelled
	}
	return key, nil
}

func (r *KeyReader) readRaw() (string, error) {
	state, err := r.console.makeRaw(r.fd)
	if err != nil {
		return r.readByte()
	}
	defer func() { _ = r.console.restore(r.fd, state) }()
	// escape sequences of special keys arrive in one read
	buf := make([]byte, 8)
	n, err := r.input.Read(buf)
	if n > 0 {
		return firstKey(buf[:n]), nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return "", err
}

// firstKey returns the first key of a raw read; keys typed ahead are dropped
// while an escape sequence is kept whole.
func firstKey(data []byte) string {
	if data[0] == escape {
		return string(data)
	}
	_, size := utf8.DecodeRune(data)
	return string(data[:size])
}

// readByte reads from a non-terminal input, skipping line terminators so that
// answers may be piped one per line.
func (r *KeyReader) readByte() (string, error) {
	buf := make([]byte, 1)
	for {
		n, err := r.input.Read(buf)
		if n == 1 {
			if buf[0] == '\n' || buf[0] == '\r' {
				continue
			}
			return string(buf), nil
		}
		if err != nil {
			return "", err
		}
	}
}
