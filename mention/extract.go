package mention

import (
	"github.com/samber/mo"
	"heckel.io/mentionbot/entity"
	"math"
	"sync"
)

// notFound is the sort offset of entities that do not occur in the text
const notFound = math.MaxInt

// extraction is the result of one scan over the content: the resolved entities in source order,
// and the offset of the first match for each entity ID
type extraction[T entity.Mentionable] struct {
	items []T
	first map[entity.ID]int
}

// extract scans the content for matches of the given kind, resolves each match and collects the
// results in the order they appear. Matches that cannot be resolved are skipped. If distinct is
// set, only the first match of each entity is kept.
func extract[T entity.Mentionable](content string, kind Kind, distinct bool, resolve func(m Match) mo.Option[T]) *extraction[T] {
	result := &extraction[T]{
		items: make([]T, 0),
		first: make(map[entity.ID]int),
	}
	if resolve == nil {
		return result
	}
	for _, match := range findMatches(kind, content) {
		elem, ok := resolve(match).Get()
		if !ok {
			continue
		}
		id := elem.Snowflake()
		if _, seen := result.first[id]; seen {
			if distinct {
				continue
			}
		} else {
			result.first[id] = match.Offset
		}
		result.items = append(result.items, elem)
	}
	return result
}

func (e *extraction[T]) has(id entity.ID) bool {
	_, ok := e.first[id]
	return ok
}

func (e *extraction[T]) offset(id entity.ID) int {
	if offset, ok := e.first[id]; ok {
		return offset
	}
	return notFound
}

func (e *extraction[T]) ids() []entity.ID {
	ids := make([]entity.ID, 0, len(e.items))
	for _, item := range e.items {
		ids = append(ids, item.Snowflake())
	}
	return ids
}

func (e *extraction[T]) list() []T {
	items := make([]T, len(e.items))
	copy(items, e.items)
	return items
}

// cell memoizes one extraction per Mentions instance
type cell[T entity.Mentionable] struct {
	once   sync.Once
	result *extraction[T]
}

func (c *cell[T]) get(compute func() *extraction[T]) *extraction[T] {
	c.once.Do(func() {
		c.result = compute()
	})
	return c.result
}
