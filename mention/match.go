package mention

import (
	"heckel.io/mentionbot/entity"
)

// Match is a single occurrence of a mention pattern in the message text
type Match struct {
	Kind   Kind
	Offset int // byte offset of the token in the content
	Text   string
	ID     entity.ID
	Groups []string
}

// Name returns the emoji name of an emote match, or an empty string for all other kinds
func (m Match) Name() string {
	if m.Kind != KindEmote || len(m.Groups) < 3 {
		return ""
	}
	return m.Groups[2]
}

// Animated returns true if an emote match uses the animated prefix, e.g. <a:name:123>
func (m Match) Animated() bool {
	return m.Kind == KindEmote && len(m.Groups) > 1 && m.Groups[1] == "a"
}

// findMatches returns all non-overlapping matches of the kind's pattern, left to right. Matches
// whose ID does not parse as a snowflake are dropped.
func findMatches(kind Kind, content string) []Match {
	pattern := kind.Pattern()
	if pattern == nil {
		return nil
	}
	indexes := pattern.FindAllStringSubmatchIndex(content, -1)
	matches := make([]Match, 0, len(indexes))
	for _, index := range indexes {
		groups := make([]string, len(index)/2)
		for i := range groups {
			if index[2*i] >= 0 {
				groups[i] = content[index[2*i]:index[2*i+1]]
			}
		}
		match := Match{
			Kind:   kind,
			Offset: index[0],
			Text:   groups[0],
			Groups: groups,
		}
		if g := kind.idGroup(); g > 0 {
			id, err := entity.ParseID(groups[g])
			if err != nil {
				continue // Malformed or overflowing, not an error
			}
			match.ID = id
		}
		matches = append(matches, match)
	}
	return matches
}
