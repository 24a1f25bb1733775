package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/askexpert/api/http/presenter"
	"github.com/artem13815/askexpert/pkg/consult"
	"github.com/artem13815/askexpert/pkg/persona"
)

type AskHandler struct {
	svc consult.Service
}

func NewAskHandler(svc consult.Service) *AskHandler {
	return &AskHandler{svc: svc}
}

type askRequest struct {
	Text    string `json:"text"`
	Persona string `json:"persona"`
}

type askResponse struct {
	Answer    string `json:"answer"`
	Persona   string `json:"persona"`
	Model     string `json:"model"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Ask forwards a question to the completion provider on behalf of a persona.
// Unknown persona values are answered by the default persona (python).
// @Summary Ask an expert persona
// @Tags    ask
// @Accept  json
// @Produce json
// @Param   input body askRequest true "question and persona (bizdev | python)"
// @Success 200 {object} askResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "empty question"
// @Failure 502 {object} presenter.ErrorResponse "provider failure"
// @Failure 503 {object} presenter.ErrorResponse "OPENAI_API_KEY not configured"
// @Router  /ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := consult.Validate(req.Text); err != nil {
		status, msg := classify(err)
		return presenter.Error(c, status, msg)
	}

	result, err := h.svc.Ask(c.Context(), req.Text, persona.Parse(req.Persona))
	if err != nil {
		status, msg := classify(err)
		return presenter.Error(c, status, msg)
	}
	return presenter.JSON(c, http.StatusOK, askResponse{
		Answer:    result.Answer,
		Persona:   result.Persona.Key(),
		Model:     result.Model,
		ElapsedMs: result.Elapsed.Milliseconds(),
	})
}

type personaItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Personas lists the selectable personas in display order.
// @Summary List personas
// @Tags    ask
// @Produce json
// @Success 200 {array} personaItem
// @Router  /personas [get]
func (h *AskHandler) Personas(c *fiber.Ctx) error {
	all := persona.All()
	out := make([]personaItem, 0, len(all))
	for _, p := range all {
		out = append(out, personaItem{Key: p.Key(), Label: p.Label()})
	}
	return presenter.JSON(c, http.StatusOK, out)
}
