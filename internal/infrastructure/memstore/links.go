package memstore

import (
	"slices"

	"library-api/internal/domains/association/model"
)

// Links holds author-event pairs in insertion order.
type Links struct {
	pairs []model.AuthorEvent
}

func (l *Links) Has(authorID, eventID int64) bool {
	return slices.Contains(l.pairs, model.AuthorEvent{AuthorID: authorID, EventID: eventID})
}

// Add reports false when the pair already exists.
func (l *Links) Add(authorID, eventID int64) bool {
	if l.Has(authorID, eventID) {
		return false
	}
	l.pairs = append(l.pairs, model.AuthorEvent{AuthorID: authorID, EventID: eventID})
	return true
}

// Remove reports false when the pair does not exist.
func (l *Links) Remove(authorID, eventID int64) bool {
	i := slices.Index(l.pairs, model.AuthorEvent{AuthorID: authorID, EventID: eventID})
	if i < 0 {
		return false
	}
	l.pairs = slices.Delete(l.pairs, i, i+1)
	return true
}

func (l *Links) DeleteWhere(pred func(model.AuthorEvent) bool) int {
	before := len(l.pairs)
	l.pairs = slices.DeleteFunc(l.pairs, pred)
	return before - len(l.pairs)
}

func (l *Links) Filter(pred func(model.AuthorEvent) bool) []model.AuthorEvent {
	var out []model.AuthorEvent
	for _, p := range l.pairs {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func (l *Links) Len() int {
	return len(l.pairs)
}
