package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/askexpert/pkg/consult"
	"github.com/artem13815/askexpert/pkg/persona"
)

// FormHandler serves the HTML question form and renders replies into it.
type FormHandler struct {
	svc consult.Service
}

func NewFormHandler(svc consult.Service) *FormHandler {
	return &FormHandler{svc: svc}
}

type personaOption struct {
	Key     string
	Label   string
	Checked bool
}

type formPage struct {
	Personas []personaOption
	Text     string
	Answer   string
	Answered bool
	Warning  string
	Error    string
}

func newFormPage(selected persona.Persona, text string) formPage {
	page := formPage{Text: text}
	for _, p := range persona.All() {
		page.Personas = append(page.Personas, personaOption{
			Key:     p.Key(),
			Label:   p.Label(),
			Checked: p == selected,
		})
	}
	return page
}

// Show renders an empty form with the first persona preselected.
func (h *FormHandler) Show(c *fiber.Ctx) error {
	return c.Render("index", newFormPage(persona.All()[0], ""))
}

// Submit validates the form, asks the selected persona and renders the outcome.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	text := c.FormValue("text")
	selected := persona.Parse(c.FormValue("persona"))
	page := newFormPage(selected, text)

	if err := consult.Validate(text); err != nil {
		page.Warning = err.Error()
		return c.Status(fiber.StatusUnprocessableEntity).Render("index", page)
	}

	result, err := h.svc.Ask(c.Context(), text, selected)
	if err != nil {
		status, msg := classify(err)
		page.Error = msg
		return c.Status(status).Render("index", page)
	}
	page.Answer = result.Answer
	page.Answered = true
	return c.Render("index", page)
}
