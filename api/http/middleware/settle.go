package middleware

import "github.com/gofiber/fiber/v2"

// settle hands a chain error to the app's error handler so that the
// response status is final before it is observed.
func settle(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
