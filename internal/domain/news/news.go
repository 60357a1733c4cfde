package news

import "strings"

// AllCategories es la categoría "comodín" del selector de la app.
const AllCategories = "Todos"

// Item es una nota del feed del abrigo.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt"`
	ReadTime string `json:"read_time"`
	ImageRef string `json:"image_ref"`
}

// Feed es estático: se arma una vez desde el seed embebido.
type Feed struct {
	items []Item
}

func NewFeed(items []Item) *Feed {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Feed{items: cp}
}

func (f *Feed) All() []Item {
	out := make([]Item, len(f.items))
	copy(out, f.items)
	return out
}

// Categories devuelve AllCategories seguido de las categorías en orden de aparición.
func (f *Feed) Categories() []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{}
	for _, it := range f.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

// ByCategory filtra por categoría exacta; vacío o AllCategories devuelve todo.
func (f *Feed) ByCategory(category string) []Item {
	category = strings.TrimSpace(category)
	if category == "" || category == AllCategories {
		return f.All()
	}
	out := make([]Item, 0)
	for _, it := range f.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
