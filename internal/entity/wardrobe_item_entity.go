package entity

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryTop    Category = "top"
	CategoryBottom Category = "bottom"
)

func (c Category) Valid() bool {
	return c == CategoryTop || c == CategoryBottom
}

func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.Valid()
}

type WardrobeItem struct {
	Id          string
	Name        string
	Category    Category
	Description string
	ImageUrl    string
	StyleTags   []string
	Embedding   []float32
	IsIndexed   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

// EmbeddingDocument is the text indexed for semantic search.
func (w *WardrobeItem) EmbeddingDocument() string {
	if len(w.StyleTags) == 0 {
		return w.Description
	}
	return w.Description + " " + strings.Join(w.StyleTags, " ")
}

// ScoredWardrobeItem is a search hit. Similarity belongs to the search, not to the item.
type ScoredWardrobeItem struct {
	Item       WardrobeItem
	Similarity float64
}
