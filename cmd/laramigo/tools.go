package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"lar-amigo/internal/domain/chat"
	"lar-amigo/internal/domain/news"
	"lar-amigo/internal/domain/phone"
)

// --- phone ---

func newPhoneCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "phone <numero>",
		Short: "Normalizar un teléfono (DDD + 9 dígitos)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			var res phone.Result
			if err := client.Post(cmd.Context(), "/phone/normalize", map[string]string{"raw": args[0]}, &res); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Masked)
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
			}
			return nil
		},
	}
}

type chatInfo struct {
	Greeting       chat.Message `json:"greeting"`
	QuickQuestions []string     `json:"quick_questions"`
	WhatsAppURL    string       `json:"whatsapp_url"`
}

// --- ask / questions ---

func newAskCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <pregunta>",
		Short: "Preguntar al asistente del abrigo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			var msgs []chat.Message
			text := strings.Join(args, " ")
			if err := client.Post(cmd.Context(), "/chat/messages", map[string]string{"text": text}, &msgs); err != nil {
				return err
			}

			for _, m := range msgs {
				if !m.IsUser {
					fmt.Fprintln(cmd.OutOrStdout(), m.Text)
				}
			}
			return nil
		},
	}
}

func newQuestionsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Listar las preguntas rápidas del asistente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			var info chatInfo
			if err := client.Get(cmd.Context(), "/chat", nil, &info); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.Greeting.Text)
			for i, q := range info.QuickQuestions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			if info.WhatsAppURL != "" {
				fmt.Fprintln(out, "WhatsApp:", info.WhatsAppURL)
			}
			return nil
		},
	}
}

// --- news ---

func newNewsCmd(c *cli) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Listar noticias del abrigo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			q := url.Values{}
			if category != "" {
				q.Set("category", category)
			}

			var items []news.Item
			if err := client.Get(cmd.Context(), "/news", q, &items); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, it := range items {
				fmt.Fprintf(out, "[%s] %s (%s)\n", it.Category, it.Title, it.Date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "categoría (vacío o Todos = todas)")
	return cmd
}
