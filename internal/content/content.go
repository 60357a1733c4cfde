// Package content carga los datos fijos de la app (catálogo, guion del chat,
// noticias) desde documentos YAML embebidos en el binario.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"lar-amigo/internal/domain/chat"
	"lar-amigo/internal/domain/news"
	"lar-amigo/internal/domain/pets"
)

var (
	//go:embed pets.yaml
	petsYAML []byte
	//go:embed chat.yaml
	chatYAML []byte
	//go:embed news.yaml
	newsYAML []byte
)

var ErrInvalidSeed = errors.New("invalid seed data")

type petDoc struct {
	Pets []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Species     string `yaml:"species"`
		Breed       string `yaml:"breed"`
		Age         string `yaml:"age"`
		Size        string `yaml:"size"`
		Gender      string `yaml:"gender"`
		Description string `yaml:"description"`
		Image       string `yaml:"image"`
	} `yaml:"pets"`
}

type newsDoc struct {
	News []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Category string `yaml:"category"`
		Date     string `yaml:"date"`
		Excerpt  string `yaml:"excerpt"`
		ReadTime string `yaml:"read_time"`
		Image    string `yaml:"image"`
	} `yaml:"news"`
}

// Catalog devuelve el catálogo embebido, validado.
func Catalog() ([]pets.Pet, error) {
	return ParseCatalog(petsYAML)
}

// ParseCatalog decodifica y valida un catálogo: ids únicos, nombre y enums válidos.
func ParseCatalog(data []byte) ([]pets.Pet, error) {
	var doc petDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Pets))
	out := make([]pets.Pet, 0, len(doc.Pets))
	for i, raw := range doc.Pets {
		id := strings.TrimSpace(raw.ID)
		if id == "" || strings.TrimSpace(raw.Name) == "" {
			return nil, fmt.Errorf("%w: pet #%d: id and name required", ErrInvalidSeed, i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate pet id %q", ErrInvalidSeed, id)
		}
		seen[id] = struct{}{}

		sp, err := pets.ParseSpecies(raw.Species)
		if err != nil {
			return nil, fmt.Errorf("%w: pet %q: species %q", ErrInvalidSeed, id, raw.Species)
		}
		sz, err := pets.ParseSize(raw.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: pet %q: size %q", ErrInvalidSeed, id, raw.Size)
		}
		age, err := pets.ParseAge(raw.Age)
		if err != nil {
			return nil, fmt.Errorf("%w: pet %q: age %q", ErrInvalidSeed, id, raw.Age)
		}
		g, err := pets.ParseGender(raw.Gender)
		if err != nil {
			return nil, fmt.Errorf("%w: pet %q: gender %q", ErrInvalidSeed, id, raw.Gender)
		}

		out = append(out, pets.Pet{
			ID:          id,
			Name:        strings.TrimSpace(raw.Name),
			Species:     sp,
			Breed:       strings.TrimSpace(raw.Breed),
			Age:         age,
			Size:        sz,
			Gender:      g,
			Description: strings.TrimSpace(raw.Description),
			ImageRef:    strings.TrimSpace(raw.Image),
		})
	}
	return out, nil
}

// ChatScript devuelve el guion del bot.
func ChatScript() (chat.Script, error) {
	return ParseChatScript(chatYAML)
}

func ParseChatScript(data []byte) (chat.Script, error) {
	var s chat.Script
	if err := decodeStrict(data, &s); err != nil {
		return chat.Script{}, fmt.Errorf("content: decode chat script: %w", err)
	}
	if strings.TrimSpace(s.Greeting) == "" || strings.TrimSpace(s.DefaultAnswer) == "" {
		return chat.Script{}, fmt.Errorf("%w: chat greeting and default answer required", ErrInvalidSeed)
	}
	if strings.TrimSpace(s.FallbackMessage) == "" {
		s.FallbackMessage = s.DefaultAnswer
	}
	seen := map[string]struct{}{}
	for _, qa := range s.QuickQuestions {
		q := strings.TrimSpace(qa.Question)
		if q == "" || strings.TrimSpace(qa.Answer) == "" {
			return chat.Script{}, fmt.Errorf("%w: empty quick question or answer", ErrInvalidSeed)
		}
		if _, dup := seen[q]; dup {
			return chat.Script{}, fmt.Errorf("%w: duplicate quick question %q", ErrInvalidSeed, q)
		}
		seen[q] = struct{}{}
	}
	return s, nil
}

// News devuelve las noticias embebidas.
func News() ([]news.Item, error) {
	return ParseNews(newsYAML)
}

func ParseNews(data []byte) ([]news.Item, error) {
	var doc newsDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode news: %w", err)
	}
	out := make([]news.Item, 0, len(doc.News))
	for _, raw := range doc.News {
		if strings.TrimSpace(raw.ID) == "" || strings.TrimSpace(raw.Category) == "" {
			return nil, fmt.Errorf("%w: news id and category required", ErrInvalidSeed)
		}
		out = append(out, news.Item{
			ID:       raw.ID,
			Title:    raw.Title,
			Category: raw.Category,
			Date:     raw.Date,
			Excerpt:  raw.Excerpt,
			ReadTime: raw.ReadTime,
			ImageRef: raw.Image,
		})
	}
	return out, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
