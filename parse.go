package minforth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var definitionMarks = strings.NewReplacer(":", "", ";", "")

// parseLine tokenizes one line of program text. Definition lines update the
// dictionary and produce no tokens.
func (interp *Interpreter) parseLine(line string) ([]Token, error) {
	if isDefinition(line) {
		return nil, interp.parseDefinition(line)
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, nil
	}
	toks := make([]Token, 0, len(words))
	for _, word := range words {
		tok, err := interp.resolve(word)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// parseDefinition handles a ": name word... ;" line. The body is resolved
// now, against the dictionary as it stands before name is (re)defined.
func (interp *Interpreter) parseDefinition(line string) error {
	words := strings.Fields(definitionMarks.Replace(line))
	if len(words) == 0 {
		return DefinitionError{Reason: "missing word name"}
	}

	name := words[0]
	if isNumeral(name) {
		return DefinitionError{Name: name, Reason: "cannot redefine numbers"}
	}

	body := make([]Token, 0, len(words)-1)
	for _, word := range words[1:] {
		tok, err := interp.resolve(word)
		if err != nil {
			return err
		}
		body = append(body, tok)
	}

	key := wordKey(name)
	interp.dict.define(key, body)
	interp.logf(":", "%v %v ;", key, formatTokens(body))
	return nil
}

// resolve turns a single word into a token: numbers first, then defined
// words, then operators.
func (interp *Interpreter) resolve(word string) (Token, error) {
	if isNumeral(word) {
		n, err := strconv.ParseInt(word, 10, strconv.IntSize)
		if err != nil {
			return nil, LiteralError{word, err}
		}
		return Number(n), nil
	}
	key := wordKey(word)
	if body, defined := interp.dict.lookup(key); defined {
		return WordRef{Name: key, Body: body}, nil
	}
	if op, ok := lookupOp(key); ok {
		return Operator(op), nil
	}
	return nil, UnknownWordError{word}
}

// isDefinition reports whether line, once trimmed, starts with a colon
// followed by whitespace.
func isDefinition(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != ':' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line[1:])
	return unicode.IsSpace(r)
}

// isNumeral reports whether word is a non-empty run of ASCII decimal digits.
func isNumeral(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// wordKey folds word into its dictionary key.
func wordKey(word string) string {
	return strings.ToLower(word)
}
