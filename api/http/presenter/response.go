package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes message with the request id so a reply can be matched to the access log.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{
		Message:   message,
		RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
	})
}
