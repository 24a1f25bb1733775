package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/askexpert/pkg/config"
	"github.com/artem13815/askexpert/pkg/consult"
	"github.com/artem13815/askexpert/pkg/llm/openai"
	"github.com/artem13815/askexpert/pkg/logging"
	"github.com/artem13815/askexpert/pkg/persona"
)

func newAskCmd() *cobra.Command {
	var personaKey string
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask a single question from the terminal",
		Long: `Ask sends one question to the selected persona and prints the reply.
With no arguments the question is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			if err := consult.Validate(text); err != nil {
				return err
			}

			p, ok := persona.Lookup(personaKey)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown persona %q, using %s\n", personaKey, p.Key())
			}

			cfg := config.Load()
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			svc := consult.NewService(cfg, openai.New(cfg.OpenAIBaseURL), logger)

			result, err := svc.Ask(cmd.Context(), text, p)
			if err != nil {
				var perr *consult.ProviderError
				if errors.As(err, &perr) {
					return fmt.Errorf("an error occurred: %w", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&personaKey, "persona", "p", persona.All()[0].Key(), "persona key (bizdev | python)")
	return cmd
}

func newPersonasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the available personas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range persona.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", p.Key(), p.Label())
			}
		},
	}
}
