package minforth

// dictionary is the definition table: word bodies by lower-cased name,
// remembering the order in which names were first defined.
type dictionary struct {
	names  []string
	bodies map[string][]Token
}

func (dict dictionary) lookup(name string) ([]Token, bool) {
	body, defined := dict.bodies[name]
	return body, defined
}

// define maps name to body, replacing any prior body; tokens already
// resolved against the prior body keep it.
func (dict *dictionary) define(name string, body []Token) {
	if _, defined := dict.bodies[name]; !defined {
		if dict.bodies == nil {
			dict.bodies = make(map[string][]Token)
		}
		dict.names = append(dict.names, name)
	}
	dict.bodies[name] = body
}
