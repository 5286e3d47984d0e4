package minforth

import (
	"fmt"

	"github.com/jcorbin/minforth/internal/logio"
)

// Interpreter evaluates programs against a definition table that persists
// for its lifetime. It is not safe for concurrent use.
type Interpreter struct {
	logging
	dict      dictionary
	stepLimit int
}

// machine is the state of one evaluation: a fresh stack and a step count.
type machine struct {
	*Interpreter
	stack []int
	steps int
}

func (interp *Interpreter) evaluateProgram(lines []string) ([]int, error) {
	m := machine{Interpreter: interp}
	for i, line := range lines {
		if err := m.run(line); err != nil {
			m.halt(err)
			return nil, LineError{Line: i + 1, Text: line, Err: err}
		}
	}
	return append([]int{}, m.stack...), nil
}

// halt logs err along with a dump of the stack and definitions.
func (m *machine) halt(err error) {
	if m.logfn == nil {
		return
	}
	m.logf("#", "halt error: %v", err)
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		m.logf("#", mess, args...)
	}}
	defer lw.Close()
	dumper{interp: m.Interpreter, out: lw}.dump(m.stack)
}

func (m *machine) run(line string) error {
	m.logf(">", "%q", line)
	toks, err := m.parseLine(line)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		if err := m.exec(tok); err != nil {
			return err
		}
	}
	return nil
}

func (m *machine) exec(tok Token) error {
	m.steps++
	if limit := m.stepLimit; limit > 0 && m.steps > limit {
		return StepLimitError{limit}
	}
	if m.logfn != nil {
		m.logf(".", "%v -- s:%v", tok, m.stack)
	}

	switch tok := tok.(type) {
	case Number:
		m.push(int(tok))
		return nil
	case Operator:
		return m.apply(OpKind(tok))
	}

	ref := tok.(WordRef)
	if m.logfn != nil {
		defer m.withLogPrefix("\t")()
	}
	for _, sub := range ref.Body {
		if err := m.exec(sub); err != nil {
			return err
		}
	}
	return nil
}

var opArity = [opKindMax]int{
	Add:      2,
	Subtract: 2,
	Multiply: 2,
	Divide:   2,
	Dup:      1,
	Swap:     2,
	Over:     2,
	Drop:     1,
}

// apply checks op's arity against the stack, then runs it.
func (m *machine) apply(op OpKind) error {
	if op < 0 || op >= opKindMax {
		return fmt.Errorf("invalid operator %v", op)
	}
	need := opArity[op]
	if have := len(m.stack); have < need {
		return UnderflowError{Op: op, Need: need, Have: have}
	}
	if need == 1 {
		return m.unary(op, m.pop())
	}
	right := m.pop()
	left := m.pop()
	return m.binary(op, left, right)
}

func (m *machine) unary(op OpKind, v int) error {
	switch op {
	case Dup:
		m.push(v, v)
	case Drop:
	default:
		return fmt.Errorf("%v is not a unary operator", op)
	}
	return nil
}

func (m *machine) binary(op OpKind, left, right int) error {
	switch op {
	case Add:
		m.push(left + right)
	case Subtract:
		m.push(left - right)
	case Multiply:
		m.push(left * right)
	case Divide:
		if right == 0 {
			return ErrDivisionByZero
		}
		m.push(left / right)
	case Swap:
		m.push(right, left)
	case Over:
		m.push(left, right, left)
	default:
		return fmt.Errorf("%v is not a binary operator", op)
	}
	return nil
}

func (m *machine) push(values ...int) {
	m.stack = append(m.stack, values...)
}

func (m *machine) pop() (val int) {
	i := len(m.stack) - 1
	val, m.stack = m.stack[i], m.stack[:i]
	return val
}
