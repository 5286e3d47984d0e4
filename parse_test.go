package minforth

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseLine(t *testing.T) {
	double := []Token{Operator(Dup), Operator(Multiply)}

	for _, tc := range []struct {
		name string
		defs []string
		line string
		toks []Token
		err  error
	}{
		{name: "empty", line: ""},
		{name: "blank", line: " \t "},
		{
			name: "numbers",
			line: "1 22 333",
			toks: []Token{Number(1), Number(22), Number(333)},
		},
		{
			name: "operators",
			line: "+ - * / dup swap over drop",
			toks: []Token{
				Operator(Add), Operator(Subtract), Operator(Multiply), Operator(Divide),
				Operator(Dup), Operator(Swap), Operator(Over), Operator(Drop),
			},
		},
		{
			name: "operators any case",
			line: "DUP Swap oVeR",
			toks: []Token{Operator(Dup), Operator(Swap), Operator(Over)},
		},
		{
			name: "words",
			defs: []string{": double dup * ;"},
			line: "3 Double",
			toks: []Token{Number(3), WordRef{Name: "double", Body: double}},
		},
		{
			name: "word shadows operator",
			defs: []string{": drop 0 ;"},
			line: "drop",
			toks: []Token{WordRef{Name: "drop", Body: []Token{Number(0)}}},
		},
		{
			name: "definition",
			line: ": double dup * ;",
		},
		{
			name: "unknown",
			line: "1 nope 2",
			err:  UnknownWordError{"nope"},
		},
		{
			name: "numeric definition",
			line: ": 42 dup ;",
			err:  DefinitionError{Name: "42", Reason: "cannot redefine numbers"},
		},
		{
			name: "definition unknown body",
			line: ": foo dup bar ;",
			err:  UnknownWordError{"bar"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			interp := New()
			for _, def := range tc.defs {
				toks, err := interp.parseLine(def)
				require.NoError(t, err, "must parse definition %q", def)
				require.Empty(t, toks, "definitions must produce no tokens")
			}
			toks, err := interp.parseLine(tc.line)
			if tc.err != nil {
				assert.Equal(t, tc.err, err, "expected parse error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.toks, toks, "got tokens: %s", repr.String(toks))
		})
	}
}

func Test_parseDefinition(t *testing.T) {
	interp := New()
	require.NoError(t, interp.parseDefinition(": double dup * ;"))
	require.NoError(t, interp.parseDefinition(": QUAD double double ;"))

	body, defined := interp.dict.lookup("quad")
	require.True(t, defined, "expected quad to be defined")
	double, _ := interp.dict.lookup("double")
	assert.Equal(t, []Token{
		WordRef{Name: "double", Body: double},
		WordRef{Name: "double", Body: double},
	}, body, "got body: %s", repr.String(body))

	_, defined = interp.dict.lookup("QUAD")
	assert.False(t, defined, "expected names to be stored lower-cased")
	assert.Equal(t, DefinitionError{Reason: "missing word name"}, interp.parseDefinition(": ;"))
}

func Test_isDefinition(t *testing.T) {
	for line, want := range map[string]bool{
		": foo ;":     true,
		":\tfoo ;":    true,
		"  : foo 1 ;": true,
		":foo ;":      false,
		":":           false,
		" : ":         false,
		": ":          false,
		"1 : foo ;":   false,
		"":            false,
		"dup":         false,
		";":           false,
	} {
		assert.Equal(t, want, isDefinition(line), "isDefinition(%q)", line)
	}
}

func Test_isNumeral(t *testing.T) {
	for word, want := range map[string]bool{
		"0":    true,
		"42":   true,
		"007":  true,
		"":     false,
		"-1":   false,
		"+1":   false,
		"1.5":  false,
		"1e3":  false,
		"0x10": false,
		"١٢":   false,
		"dup":  false,
	} {
		assert.Equal(t, want, isNumeral(word), "isNumeral(%q)", word)
	}
}
