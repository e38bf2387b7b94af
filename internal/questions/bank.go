// Package questions holds the immutable question catalog loaded at startup.
package questions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"telegram-techq-bot/internal/models"
)

// ErrNotFound is returned by ByID when the catalog has no item with the
// given id. The catalog may shrink between deployments, so stored ids can
// go stale; lookups must treat this as recoverable.
var ErrNotFound = errors.New("question not found")

// Bank is the immutable question catalog.
type Bank struct {
	items []models.QuestionItem
	byID  map[models.QuestionID]models.QuestionItem
}

// Load reads a JSON catalog file and validates every entry. Malformed
// entries fail the load instead of failing later on field access.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var items []models.QuestionItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	bank, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return bank, nil
}

// New builds a bank from already decoded items, validating them.
func New(items []models.QuestionItem) (*Bank, error) {
	if len(items) == 0 {
		return nil, errors.New("catalog is empty")
	}

	byID := make(map[models.QuestionID]models.QuestionItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("entry %d: missing id", i)
		}
		if item.Category == "" || item.Difficulty == "" {
			return nil, fmt.Errorf("entry %d (id: %s): missing category or difficulty", i, item.ID)
		}
		if item.Question == "" || item.Solution == "" {
			return nil, fmt.Errorf("entry %d (id: %s): missing question or solution", i, item.ID)
		}
		if _, ok := byID[item.ID]; ok {
			return nil, fmt.Errorf("entry %d: duplicate id %s", i, item.ID)
		}
		byID[item.ID] = item
	}

	return &Bank{items: items, byID: byID}, nil
}

// All returns the catalog in load order.
func (b *Bank) All() []models.QuestionItem {
	return b.items
}

func (b *Bank) ByID(id models.QuestionID) (models.QuestionItem, error) {
	item, ok := b.byID[id]
	if !ok {
		return models.QuestionItem{}, fmt.Errorf("%w (id: %s)", ErrNotFound, id)
	}
	return item, nil
}

func (b *Bank) Len() int {
	return len(b.items)
}
