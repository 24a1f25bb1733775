package main

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

func newRootCmd() *cobra.Command {
	var port string
	root := &cobra.Command{
		Use:     "askexpert",
		Version: Version,
		Short:   "Ask a business or Python expert persona via a hosted LLM",
		Long: `askexpert serves a small web form and JSON API that forward a question,
together with an expert persona, to an OpenAI chat-completion model.

Set OPENAI_API_KEY in the environment or a .env file before asking.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}
	root.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")

	root.AddCommand(newServeCmd(), newAskCmd(), newPersonasCmd())
	return root
}
