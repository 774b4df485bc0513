package entity

import (
	"fmt"
	"strings"
)

// CustomEmoji is a guild-specific, image-backed emoji that is referenced by ID
type CustomEmoji struct {
	ID       ID
	Guild    ID
	Name     string
	Animated bool
	Detached bool // built from the mention text, not found in any cache
}

var _ Mentionable = (*CustomEmoji)(nil)

// Snowflake returns the emoji ID
func (e *CustomEmoji) Snowflake() ID {
	return e.ID
}

// Mention returns the emoji token, e.g. <:name:123> or <a:name:123>
func (e *CustomEmoji) Mention() string {
	if e.Animated {
		return fmt.Sprintf("<a:%s:%s>", e.Name, e.ID)
	}
	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}

// UnicodeEmoji is a standard emoji. It is referenced by its glyph and has no ID.
type UnicodeEmoji struct {
	Glyph string
	Alias string
}

// Mention returns the glyph, unicode emoji are sent as-is
func (e *UnicodeEmoji) Mention() string {
	return e.Glyph
}

// Codepoints returns the glyph as a sequence of U+ codepoints, e.g. U+1f44dU+1f3fb
func (e *UnicodeEmoji) Codepoints() string {
	var b strings.Builder
	for _, r := range e.Glyph {
		fmt.Fprintf(&b, "U+%x", r)
	}
	return b.String()
}
