// Package glyph finds standard unicode emoji in message text. Unlike custom emoji, they carry no
// ID and are never resolved against a cache, so they are handled outside of package mention.
package glyph

import (
	"github.com/kenshaw/emoji"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
	"regexp"
	"unicode/utf8"
)

var (
	aliasRegex     = regexp.MustCompile(`:([a-z0-9_+\-]+):`)
	shortcodeRegex = regexp.MustCompile(`^:([a-z0-9_+\-]+):`)
	maxGlyphLength = longestGlyph()
)

// Scan returns the unicode emoji in the text in order of appearance, both literal glyphs and
// :alias: shortcodes. Custom emoji tokens like <:blob:123> are ignored. At every position the
// longest glyph wins, and a shortcode only counts if its alias exists.
func Scan(text string) []*entity.UnicodeEmoji {
	text = mention.KindEmote.Pattern().ReplaceAllString(text, " ")
	found := make([]*entity.UnicodeEmoji, 0)
	for i := 0; i < len(text); {
		if text[i] == ':' {
			if m := shortcodeRegex.FindStringSubmatch(text[i:]); m != nil {
				if e, ok := Lookup(m[1]); ok {
					found = append(found, e)
					i += len(m[0])
					continue
				}
			}
		}
		if e, n := glyphAt(text[i:]); e != nil {
			found = append(found, e)
			i += n
			continue
		}
		_, n := utf8.DecodeRuneInString(text[i:])
		i += n
	}
	return found
}

// Lookup returns the unicode emoji for an alias, with or without colons
func Lookup(alias string) (*entity.UnicodeEmoji, bool) {
	if m := aliasRegex.FindStringSubmatch(alias); m != nil {
		alias = m[1]
	}
	e := emoji.FromAlias(alias)
	if e == nil {
		return nil, false
	}
	return &entity.UnicodeEmoji{Glyph: e.Emoji, Alias: alias}, true
}

// glyphAt returns the longest emoji glyph at the start of s and its length in bytes
func glyphAt(s string) (*entity.UnicodeEmoji, int) {
	if s[0] < utf8.RuneSelf && (len(s) < 2 || s[1] < utf8.RuneSelf) {
		return nil, 0 // Only keycap sequences start with ASCII
	}
	n := maxGlyphLength
	if len(s) < n {
		n = len(s)
	}
	for ; n > 0; n-- {
		if e := emoji.FromCode(s[:n]); e != nil && len(e.Aliases) > 0 {
			return &entity.UnicodeEmoji{Glyph: e.Emoji, Alias: e.Aliases[0]}, n
		}
	}
	return nil, 0
}

func longestGlyph() int {
	longest := 0
	for _, e := range emoji.Gemoji() {
		if len(e.Emoji) > longest {
			longest = len(e.Emoji)
		}
	}
	return longest
}
