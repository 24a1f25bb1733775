package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/askexpert/pkg/llm"
)

func TestFormatSystemAndUser(t *testing.T) {
	tmpl := FromMessages(
		Part{Role: llm.RoleSystem, Text: "You are a tutor."},
		Part{Role: llm.RoleUser, Text: "{user_text}"},
	)

	msgs, err := tmpl.Format(map[string]string{"user_text": "Hello"})
	require.NoError(t, err)
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a tutor."},
		{Role: llm.RoleUser, Content: "Hello"},
	}, msgs)
}

func TestFormatAssistantRole(t *testing.T) {
	tmpl := FromMessages(
		Part{Role: llm.RoleUser, Text: "hi"},
		Part{Role: llm.RoleAssistant, Text: "hello {name}"},
	)

	msgs, err := tmpl.Format(map[string]string{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleUser, Content: "hi"},
		{Role: llm.RoleAssistant, Content: "hello Ann"},
	}, msgs)
}

func TestFormatInsertsValuesVerbatim(t *testing.T) {
	tmpl := FromMessages(Part{Role: llm.RoleUser, Text: "{user_text}"})

	inputs := []string{
		"dict = {user_text}",
		"{\"json\": true}",
		"  leading and trailing  \n",
		"<script>alert(1)</script>",
		"d = {}\nd['k'] = 1",
		"closing } only",
		"{{ doubled }}",
	}
	for _, in := range inputs {
		msgs, err := tmpl.Format(map[string]string{"user_text": in})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, in, msgs[0].Content)
	}
}

func TestFormatEscapedBraces(t *testing.T) {
	tmpl := FromMessages(Part{Role: llm.RoleSystem, Text: "Reply as JSON like {{\"k\": 1}} for {name}."})

	msgs, err := tmpl.Format(map[string]string{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, `Reply as JSON like {"k": 1} for Ann.`, msgs[0].Content)
}

func TestFormatMissingValue(t *testing.T) {
	tmpl := FromMessages(
		Part{Role: llm.RoleSystem, Text: "static"},
		Part{Role: llm.RoleUser, Text: "{user_text}"},
	)

	_, err := tmpl.Format(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format prompt")
}

func TestFormatUnclosedBrace(t *testing.T) {
	tmpl := FromMessages(Part{Role: llm.RoleUser, Text: "open { never closed"})

	_, err := tmpl.Format(nil)
	require.Error(t, err)
}

func TestFromMessagesCopiesParts(t *testing.T) {
	parts := []Part{{Role: llm.RoleUser, Text: "{x}"}}
	tmpl := FromMessages(parts...)
	parts[0].Text = "changed"

	msgs, err := tmpl.Format(map[string]string{"x": "kept"})
	require.NoError(t, err)
	assert.Equal(t, "kept", msgs[0].Content)
}
