package minforth

import (
	"bytes"
	"fmt"
	"io"
)

// Dump writes the definition table to w as definition lines, in first
// definition order. Words used in a body are written by name, so the output
// re-evaluates to an equivalent table only when no word was redefined.
func (interp *Interpreter) Dump(w io.Writer) error {
	return dumper{interp: interp, out: w}.dumpDict()
}

type dumper struct {
	interp *Interpreter
	out    io.Writer
}

func (dump dumper) dump(stack []int) error {
	if _, err := fmt.Fprintf(dump.out, "stack: %v\n", stack); err != nil {
		return err
	}
	return dump.dumpDict()
}

func (dump dumper) dumpDict() error {
	var buf bytes.Buffer
	for _, name := range dump.interp.dict.names {
		body, _ := dump.interp.dict.lookup(name)
		buf.WriteString(": ")
		buf.WriteString(name)
		for _, tok := range body {
			buf.WriteByte(' ')
			buf.WriteString(tok.String())
		}
		buf.WriteString(" ;\n")
		if _, err := buf.WriteTo(dump.out); err != nil {
			return err
		}
	}
	return nil
}
