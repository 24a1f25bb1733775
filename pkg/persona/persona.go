// Package persona holds the fixed set of expert roles a question can be
// addressed to, and the system instruction each role sends to the model.
package persona

import "strings"

// Persona selects the instruction text for a request.
type Persona int

const (
	BizDevConsultant Persona = iota
	PythonTutor
)

// Default is used for any selector that does not name a known persona.
const Default = PythonTutor

type entry struct {
	key         string
	label       string
	instruction string
}

var table = map[Persona]entry{
	BizDevConsultant: {
		key:   "bizdev",
		label: "Business development consultant (BizDev)",
		instruction: "You are an excellent business development consultant. " +
			"Taking the user's situation as given, propose actionable measures as a bulleted list, " +
			"and finish by presenting exactly one first step (Next Action).",
	},
	PythonTutor: {
		key:   "python",
		label: "Python tutor",
		instruction: "You are an excellent Python tutor. " +
			"Explain so that a beginner can follow, in the order conclusion, reason, concrete example, " +
			"and include a short code example when it helps.",
	},
}

// All returns the personas in the order they are offered to the user.
func All() []Persona {
	return []Persona{BizDevConsultant, PythonTutor}
}

// Lookup resolves a key or display label. Unknown values resolve to Default
// with ok set to false.
func Lookup(s string) (Persona, bool) {
	s = strings.TrimSpace(s)
	for _, p := range All() {
		e := table[p]
		if strings.EqualFold(s, e.key) || s == e.label {
			return p, true
		}
	}
	return Default, false
}

// Parse is Lookup without the recognition flag.
func Parse(s string) Persona {
	p, _ := Lookup(s)
	return p
}

// Canonical maps values outside the enumeration to Default.
func (p Persona) Canonical() Persona {
	switch p {
	case BizDevConsultant, PythonTutor:
		return p
	default:
		return Default
	}
}

func (p Persona) resolve() entry { return table[p.Canonical()] }

// Instruction returns the system message for the persona.
func (p Persona) Instruction() string { return p.resolve().instruction }

// Key is the short selector accepted by Lookup, e.g. "bizdev".
func (p Persona) Key() string { return p.resolve().key }

// Label is the name shown on the form.
func (p Persona) Label() string { return p.resolve().label }

// String returns the key.
func (p Persona) String() string { return p.Key() }
