package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/minforth"
	"github.com/jcorbin/minforth/internal/fileinput"
	"github.com/jcorbin/minforth/internal/logio"
)

func main() {
	log := logio.NewLogger(os.Stderr)

	var trace, dump bool
	var stepLimit int
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print word definitions after evaluating")
	flag.IntVar(&stepLimit, "step-limit", 0, "limit how many words may be executed")
	flag.Parse()

	var opts []minforth.Option
	if trace {
		opts = append(opts, minforth.WithLogf(log.Leveledf("TRACE")))
	}
	if stepLimit != 0 {
		opts = append(opts, minforth.WithStepLimit(stepLimit))
	}
	interp := minforth.New(opts...)

	out := newOutput(os.Stdout)
	log.ErrorIf(run(interp, os.Stdin, out, dump))
	log.ErrorIf(out.Flush())
	os.Exit(log.ExitCode())
}

// run evaluates all lines read from in, locating any error by the name and
// line number of its input.
func run(interp *minforth.Interpreter, in io.Reader, out io.Writer, dump bool) error {
	input := fileinput.Input{Queue: []io.Reader{in}}
	lines, err := input.ReadLines()
	if err != nil {
		return err
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}

	stack, err := interp.EvaluateProgram(texts)
	var lineErr minforth.LineError
	if errors.As(err, &lineErr) {
		return fmt.Errorf("%v: %w", lines[lineErr.Line-1].Location, lineErr.Err)
	} else if err != nil {
		return err
	}

	if dump {
		if err := interp.Dump(out); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out, stack)
	return err
}
