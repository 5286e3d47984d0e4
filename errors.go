package minforth

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; each error type below matches one of them.
var (
	// ErrUnknownWord matches UnknownWordError.
	ErrUnknownWord = errors.New("unknown word")

	// ErrInvalidDefinition matches DefinitionError.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrStackUnderflow matches UnderflowError.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrDivisionByZero is returned as is when dividing by zero.
	ErrDivisionByZero = errors.New("Division by zero is not allowed")

	// ErrStepLimit matches StepLimitError.
	ErrStepLimit = errors.New("step limit exceeded")
)

// UnknownWordError reports a word that is neither a number, a defined word,
// nor an operator. Word is the text as written.
type UnknownWordError struct{ Word string }

// DefinitionError reports a rejected definition line.
type DefinitionError struct {
	Name   string
	Reason string
}

// UnderflowError reports an operator applied to too few stack values.
type UnderflowError struct {
	Op   OpKind
	Need int
	Have int
}

// LiteralError reports a digit string that does not fit in an int.
type LiteralError struct {
	Word string
	Err  error
}

// StepLimitError reports that evaluation executed more tokens than allowed.
type StepLimitError struct{ Limit int }

// LineError locates the failure of one program line; Line counts from 1.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (err UnknownWordError) Error() string {
	return fmt.Sprintf("No definition available for operator %q", err.Word)
}

func (err DefinitionError) Error() string {
	if err.Name == "" {
		return err.Reason
	}
	return fmt.Sprintf("%v: %v", err.Reason, err.Name)
}

func (err UnderflowError) Error() string {
	values := "values"
	if err.Need == 1 {
		values = "value"
	}
	return fmt.Sprintf("%v requires that the stack contain at least %v %v, have %v",
		err.Op.Name(), err.Need, values, err.Have)
}

func (err LiteralError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", err.Word, err.Err)
}

func (err StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %v exceeded", err.Limit)
}

func (err LineError) Error() string {
	return fmt.Sprintf("line %v %q: %v", err.Line, err.Text, err.Err)
}

func (UnknownWordError) Is(target error) bool { return target == ErrUnknownWord }
func (DefinitionError) Is(target error) bool  { return target == ErrInvalidDefinition }
func (UnderflowError) Is(target error) bool   { return target == ErrStackUnderflow }
func (StepLimitError) Is(target error) bool   { return target == ErrStepLimit }

func (err LiteralError) Unwrap() error { return err.Err }
func (err LineError) Unwrap() error    { return err.Err }
