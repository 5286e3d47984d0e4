package main

import (
	"bufio"
	"bytes"
	"io"
)

// output is where the final stack, and any dump, is printed; nothing reaches
// the underlying writer until Flush, so a failed run prints nothing.
type output interface {
	io.Writer
	Flush() error
}

func newOutput(w io.Writer) output {
	switch w := w.(type) {
	case output:
		return w
	case *bytes.Buffer:
		return bufferOutput{w}
	default:
		return bufio.NewWriter(w)
	}
}

type bufferOutput struct{ *bytes.Buffer }

func (bufferOutput) Flush() error { return nil }
