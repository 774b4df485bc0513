package mention

import (
	"heckel.io/mentionbot/entity"
)

// Bag is a multiset of mentioned entities. Unlike the lists returned by Mentions, it keeps every
// occurrence, so it can be used to count how often an entity was mentioned.
type Bag[T entity.Mentionable] struct {
	items  []T
	counts map[entity.ID]int
}

func newBag[T entity.Mentionable](items []T) *Bag[T] {
	counts := make(map[entity.ID]int)
	for _, item := range items {
		counts[item.Snowflake()]++
	}
	return &Bag[T]{
		items:  items,
		counts: counts,
	}
}

// Len returns the total number of occurrences
func (b *Bag[T]) Len() int {
	return len(b.items)
}

// Count returns how often the entity with the given ID occurs
func (b *Bag[T]) Count(id entity.ID) int {
	return b.counts[id]
}

// Contains returns true if the entity with the given ID occurs at least once
func (b *Bag[T]) Contains(id entity.ID) bool {
	return b.counts[id] > 0
}

// Items returns all occurrences in source order
func (b *Bag[T]) Items() []T {
	items := make([]T, len(b.items))
	copy(items, b.items)
	return items
}

// Unique returns each entity once, in order of first occurrence
func (b *Bag[T]) Unique() []T {
	seen := make(map[entity.ID]bool, len(b.counts))
	unique := make([]T, 0, len(b.counts))
	for _, item := range b.items {
		if id := item.Snowflake(); !seen[id] {
			seen[id] = true
			unique = append(unique, item)
		}
	}
	return unique
}
