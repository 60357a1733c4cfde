package chat

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("empty message")

// QA es una pregunta rápida con su respuesta fija.
type QA struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Script es el guion del bot: tabla fija pregunta -> respuesta.
type Script struct {
	Greeting        string `yaml:"greeting"`
	DefaultAnswer   string `yaml:"default_answer"`   // pregunta rápida desconocida
	FallbackMessage string `yaml:"fallback_message"` // mensaje libre
	WhatsAppText    string `yaml:"whatsapp_text"`
	QuickQuestions  []QA   `yaml:"quick_questions"`
}

// Message es una burbuja de la conversación.
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Time   string `json:"time"` // HH:MM
	IsUser bool   `json:"is_user"`
}

type Bot struct {
	script   Script
	answers  map[string]string
	whatsapp string

	now   func() time.Time
	newID func() string
}

// NewBot arma la tabla de búsqueda. whatsappPhone es el número del abrigo (solo dígitos).
func NewBot(script Script, whatsappPhone string) *Bot {
	answers := make(map[string]string, len(script.QuickQuestions))
	for _, qa := range script.QuickQuestions {
		answers[strings.TrimSpace(qa.Question)] = qa.Answer
	}
	return &Bot{
		script:   script,
		answers:  answers,
		whatsapp: strings.TrimSpace(whatsappPhone),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (b *Bot) Greeting() string { return b.script.Greeting }

// QuickQuestions devuelve las preguntas sugeridas en orden.
func (b *Bot) QuickQuestions() []string {
	out := make([]string, 0, len(b.script.QuickQuestions))
	for _, qa := range b.script.QuickQuestions {
		out = append(out, qa.Question)
	}
	return out
}

// Answer responde una pregunta rápida; si no está en la tabla, DefaultAnswer.
func (b *Bot) Answer(question string) string {
	if a, ok := b.answers[strings.TrimSpace(question)]; ok {
		return a
	}
	return b.script.DefaultAnswer
}

// Reply responde un mensaje libre: respuesta conocida o FallbackMessage.
func (b *Bot) Reply(text string) string {
	if a, ok := b.answers[strings.TrimSpace(text)]; ok {
		return a
	}
	return b.script.FallbackMessage
}

// Exchange devuelve el mensaje del usuario y la respuesta del bot.
func (b *Bot) Exchange(text string) ([]Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	at := b.now().Format("15:04")
	return []Message{
		{ID: b.newID(), Text: text, Time: at, IsUser: true},
		{ID: b.newID(), Text: b.Reply(text), Time: at, IsUser: false},
	}, nil
}

// WhatsAppURL arma el deep link al WhatsApp del abrigo. Vacío si no hay número.
func (b *Bot) WhatsAppURL() string {
	if b.whatsapp == "" {
		return ""
	}
	text := strings.ReplaceAll(url.QueryEscape(b.script.WhatsAppText), "+", "%20")
	return "whatsapp://send?phone=" + url.QueryEscape(b.whatsapp) + "&text=" + text
}
