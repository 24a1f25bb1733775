package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want Persona
	}{
		{in: "bizdev", want: BizDevConsultant},
		{in: "BizDev", want: BizDevConsultant},
		{in: "  bizdev\n", want: BizDevConsultant},
		{in: "Business development consultant (BizDev)", want: BizDevConsultant},
		{in: "python", want: PythonTutor},
		{in: "PYTHON", want: PythonTutor},
		{in: "Python tutor", want: PythonTutor},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Lookup(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownValuesFallBackToDefault(t *testing.T) {
	for _, in := range []string{"", "   ", "lawyer", "biz", "pythontutor", "事業開発"} {
		t.Run(in, func(t *testing.T) {
			got, ok := Lookup(in)
			assert.False(t, ok)
			assert.Equal(t, Default, got)
			assert.Equal(t, Default.Instruction(), Parse(in).Instruction())
		})
	}
}

func TestOutOfRangeValueUsesDefaultInstruction(t *testing.T) {
	for _, p := range []Persona{Persona(-1), Persona(2), Persona(42)} {
		assert.Equal(t, PythonTutor.Instruction(), p.Instruction())
		assert.Equal(t, PythonTutor.Key(), p.Key())
		assert.Equal(t, PythonTutor.Label(), p.Label())
	}
}

func TestDefaultIsPythonTutor(t *testing.T) {
	assert.Equal(t, PythonTutor, Default)
}

func TestAllOrder(t *testing.T) {
	assert.Equal(t, []Persona{BizDevConsultant, PythonTutor}, All())
}

func TestInstructions(t *testing.T) {
	biz := BizDevConsultant.Instruction()
	tutor := PythonTutor.Instruction()

	assert.NotEqual(t, biz, tutor)
	assert.Contains(t, biz, "business development consultant")
	assert.Contains(t, biz, "bulleted list")
	assert.Contains(t, biz, "Next Action")
	assert.Contains(t, tutor, "Python tutor")
	assert.Contains(t, tutor, "conclusion, reason, concrete example")
	assert.Contains(t, tutor, "code example")
}

func TestKeysRoundTrip(t *testing.T) {
	for _, p := range All() {
		assert.Equal(t, p, Parse(p.Key()))
		assert.Equal(t, p, Parse(p.Label()))
		assert.Equal(t, p.Key(), p.String())
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, BizDevConsultant, BizDevConsultant.Canonical())
	assert.Equal(t, PythonTutor, PythonTutor.Canonical())
	assert.Equal(t, Default, Persona(7).Canonical())
	assert.Equal(t, Default, Persona(-3).Canonical())
}
