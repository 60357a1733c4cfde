package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScript() Script {
	return Script{
		Greeting:        "Olá!",
		DefaultAnswer:   "Nossa equipe responderá em breve.",
		FallbackMessage: "Obrigado pela sua mensagem!",
		WhatsAppText:    "Olá! Quero adotar.",
		QuickQuestions: []QA{
			{Question: "Quais documentos preciso para adotar?", Answer: "RG, CPF e comprovante de residência."},
			{Question: "Quais são os custos da adoção?", Answer: "A adoção é gratuita!"},
		},
	}
}

func TestBot_Answer(t *testing.T) {
	b := NewBot(testScript(), "")

	assert.Equal(t, "A adoção é gratuita!", b.Answer("Quais são os custos da adoção?"))
	assert.Equal(t, "A adoção é gratuita!", b.Answer("  Quais são os custos da adoção?\n"))
	assert.Equal(t, "Nossa equipe responderá em breve.", b.Answer("quais são os custos da adoção?"))
}

func TestBot_QuickQuestionsKeepOrder(t *testing.T) {
	b := NewBot(testScript(), "")
	assert.Equal(t, []string{
		"Quais documentos preciso para adotar?",
		"Quais são os custos da adoção?",
	}, b.QuickQuestions())
}

func TestBot_Exchange(t *testing.T) {
	b := NewBot(testScript(), "")
	b.now = func() time.Time { return time.Date(2024, 5, 1, 9, 7, 0, 0, time.UTC) }
	n := 0
	b.newID = func() string { n++; return string(rune('a' + n - 1)) }

	msgs, err := b.Exchange("Quero adotar um gato")
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, Message{ID: "a", Text: "Quero adotar um gato", Time: "09:07", IsUser: true}, msgs[0])
	assert.Equal(t, Message{ID: "b", Text: "Obrigado pela sua mensagem!", Time: "09:07", IsUser: false}, msgs[1])

	msgs, err = b.Exchange("Quais documentos preciso para adotar?")
	require.NoError(t, err)
	assert.Equal(t, "RG, CPF e comprovante de residência.", msgs[1].Text)
}

func TestBot_ExchangeRejectsEmpty(t *testing.T) {
	b := NewBot(testScript(), "")
	_, err := b.Exchange("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestBot_WhatsAppURL(t *testing.T) {
	assert.Empty(t, NewBot(testScript(), "").WhatsAppURL())

	b := NewBot(testScript(), " 5541999998888 ")
	assert.Equal(t, "whatsapp://send?phone=5541999998888&text=Ol%C3%A1%21%20Quero%20adotar.", b.WhatsAppURL())
}
