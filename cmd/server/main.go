// @title         askexpert API
// @version       1.0
// @description   Forwards a question and an expert persona to a hosted chat-completion model and returns the reply.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"

	_ "github.com/artem13815/askexpert/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
