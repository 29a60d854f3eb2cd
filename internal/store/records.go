package store

import (
	"context"
	"slices"

	"github.com/roach88/terminus/internal/record"
)

// Wills returns all wills in creation order.
func (s *Store) Wills() []record.Will {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.doc.Wills)
}

// AddWill appends a will and returns it with ID and CreatedAt assigned.
// Any ID or CreatedAt on w is ignored.
func (s *Store) AddWill(ctx context.Context, w record.Will) (record.Will, error) {
	w = w.Normalized()
	err := s.commit(ctx, "add will", func(doc *record.Document) {
		w.ID, w.CreatedAt = s.stamp()
		doc.Wills = append(doc.Wills, w)
	})
	if err != nil {
		return record.Will{}, err
	}
	return w, nil
}

// DeleteWill removes the will with the given ID. Unknown IDs are a no-op.
func (s *Store) DeleteWill(ctx context.Context, id int64) error {
	return s.commit(ctx, "delete will", func(doc *record.Document) {
		doc.Wills = removeByID(doc.Wills, id, func(w record.Will) int64 { return w.ID })
	})
}

// Belongings returns all belongings in creation order.
func (s *Store) Belongings() []record.Belonging {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.doc.Belongings)
}

// BelongingsByCategory returns the belongings in one category, in creation order.
func (s *Store) BelongingsByCategory(category record.BelongingCategory) []record.Belonging {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []record.Belonging{}
	for _, b := range s.doc.Belongings {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// AddBelonging appends a belonging and returns it with ID and CreatedAt assigned.
func (s *Store) AddBelonging(ctx context.Context, b record.Belonging) (record.Belonging, error) {
	if err := b.Validate(); err != nil {
		return record.Belonging{}, invalidRecord("add belonging", err)
	}
	b = b.Normalized()
	err := s.commit(ctx, "add belonging", func(doc *record.Document) {
		b.ID, b.CreatedAt = s.stamp()
		doc.Belongings = append(doc.Belongings, b)
	})
	if err != nil {
		return record.Belonging{}, err
	}
	return b, nil
}

// DeleteBelonging removes the belonging with the given ID. Unknown IDs are a no-op.
func (s *Store) DeleteBelonging(ctx context.Context, id int64) error {
	return s.commit(ctx, "delete belonging", func(doc *record.Document) {
		doc.Belongings = removeByID(doc.Belongings, id, func(b record.Belonging) int64 { return b.ID })
	})
}

// Letters returns all letters in creation order.
func (s *Store) Letters() []record.Letter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.doc.Letters)
}

// AddLetter appends a letter and returns it with ID and CreatedAt assigned.
func (s *Store) AddLetter(ctx context.Context, l record.Letter) (record.Letter, error) {
	if err := l.Validate(); err != nil {
		return record.Letter{}, invalidRecord("add letter", err)
	}
	l = l.Normalized()
	err := s.commit(ctx, "add letter", func(doc *record.Document) {
		l.ID, l.CreatedAt = s.stamp()
		doc.Letters = append(doc.Letters, l)
	})
	if err != nil {
		return record.Letter{}, err
	}
	return l, nil
}

// DeleteLetter removes the letter with the given ID. Unknown IDs are a no-op.
func (s *Store) DeleteLetter(ctx context.Context, id int64) error {
	return s.commit(ctx, "delete letter", func(doc *record.Document) {
		doc.Letters = removeByID(doc.Letters, id, func(l record.Letter) int64 { return l.ID })
	})
}

// removeByID drops the first item whose ID matches, keeping the order of the rest.
func removeByID[T any](items []T, id int64, idOf func(T) int64) []T {
	i := slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
	if i < 0 {
		return items
	}
	return slices.Delete(items, i, i+1)
}
