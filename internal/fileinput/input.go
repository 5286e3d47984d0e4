// Package fileinput reads program lines from a queue of input streams,
// keeping track of where each line came from.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line is one line of text read from an Input, without its line ending.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input reads lines sequentially through a Queue of one or more streams.
type Input struct {
	Queue []io.Reader

	cur  io.Reader
	rr   io.RuneReader
	loc  Location
	scan strings.Builder
}

// ReadLine returns the next line, moving on to the next queued stream at the
// end of each one; io.EOF is returned once the queue is exhausted. A final
// line lacking a line feed is still returned.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil && r != '\n' {
			in.scan.WriteRune(r)
			continue
		}
		if err != nil && err != io.EOF {
			return Line{}, err
		}

		eof := err == io.EOF
		if eof && in.scan.Len() == 0 {
			in.closeIn()
			continue
		}

		line := in.takeLine()
		if eof {
			in.closeIn()
		}
		return line, nil
	}
}

// ReadLines reads all remaining lines.
func (in *Input) ReadLines() (lines []Line, err error) {
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func (in *Input) takeLine() Line {
	in.loc.Line++
	line := Line{
		Location: in.loc,
		Text:     strings.TrimSuffix(in.scan.String(), "\r"),
	}
	in.scan.Reset()
	return line
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	if rr, ok := r.(io.RuneReader); ok {
		in.rr = rr
	} else {
		in.rr = bufio.NewReader(r)
	}
	in.loc = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
