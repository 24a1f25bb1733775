// Package prompt builds chat message lists from fixed templates with
// {name} placeholders.
package prompt

import (
	"fmt"

	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/prompts"

	"github.com/artem13815/askexpert/pkg/llm"
)

// Part is one templated turn. Text uses f-string syntax: {name} is a
// placeholder and {{ or }} is a literal brace.
type Part struct {
	Role llm.Role
	Text string
}

// ChatTemplate is an ordered list of templated turns.
type ChatTemplate struct {
	tmpl prompts.ChatPromptTemplate
}

// FromMessages builds a template. Roles other than system and assistant
// are sent as user turns.
func FromMessages(parts ...Part) ChatTemplate {
	formatters := make([]prompts.MessageFormatter, 0, len(parts))
	for _, p := range parts {
		pt := prompts.PromptTemplate{
			Template:       p.Text,
			TemplateFormat: prompts.TemplateFormatFString,
		}
		switch p.Role {
		case llm.RoleSystem:
			formatters = append(formatters, prompts.SystemMessagePromptTemplate{Prompt: pt})
		case llm.RoleAssistant:
			formatters = append(formatters, prompts.AIMessagePromptTemplate{Prompt: pt})
		default:
			formatters = append(formatters, prompts.HumanMessagePromptTemplate{Prompt: pt})
		}
	}
	return ChatTemplate{tmpl: prompts.NewChatPromptTemplate(formatters)}
}

// Format substitutes vars into every part. Values are inserted verbatim and
// are never expanded again, so braces coming from user text survive as-is.
func (t ChatTemplate) Format(vars map[string]string) ([]llm.Message, error) {
	values := make(map[string]any, len(vars))
	for k, v := range vars {
		values[k] = v
	}
	msgs, err := t.tmpl.FormatMessages(values)
	if err != nil {
		return nil, fmt.Errorf("format prompt: %w", err)
	}

	out := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		role, err := roleOf(m.GetType())
		if err != nil {
			return nil, err
		}
		out = append(out, llm.Message{Role: role, Content: m.GetContent()})
	}
	return out, nil
}

func roleOf(t schema.ChatMessageType) (llm.Role, error) {
	switch t {
	case schema.ChatMessageTypeSystem:
		return llm.RoleSystem, nil
	case schema.ChatMessageTypeHuman:
		return llm.RoleUser, nil
	case schema.ChatMessageTypeAI:
		return llm.RoleAssistant, nil
	default:
		return "", fmt.Errorf("unsupported message type %q", t)
	}
}
