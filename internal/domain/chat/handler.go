package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el chat; limit se aplica al envío de mensajes.
func RegisterRoutes(r chi.Router, bot *Bot, limit func(http.Handler) http.Handler) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Get("/", chatInfoHandler(bot))
		cr.With(limit).Post("/messages", sendMessageHandler(bot))
	})
}

type chatInfoResponse struct {
	Greeting       Message  `json:"greeting"`
	QuickQuestions []string `json:"quick_questions"`
	WhatsAppURL    string   `json:"whatsapp_url,omitempty"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func chatInfoHandler(bot *Bot) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, chatInfoResponse{
			Greeting: Message{
				ID:     "greeting",
				Text:   bot.Greeting(),
				Time:   bot.now().Format("15:04"),
				IsUser: false,
			},
			QuickQuestions: bot.QuickQuestions(),
			WhatsAppURL:    bot.WhatsAppURL(),
		})
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensaje al bot
// @Description Devuelve el mensaje del usuario y la respuesta guionada.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body sendMessageRequest true "Mensaje"
// @Success 200 {array} Message
// @Failure 400 {string} string "invalid json / empty message"
// @Router /chat/messages [post]
func sendMessageHandler(bot *Bot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		msgs, err := bot.Exchange(req.Text)
		if err != nil {
			if errors.Is(err, ErrEmptyMessage) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
