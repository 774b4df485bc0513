// Package mention parses message text for references to users, members, roles, channels and
// custom emoji, and resolves them against an entity cache.
//
// A Mentions instance is created once per message. Its result lists are computed lazily, at most
// once per instance, and may be read from multiple goroutines.
package mention

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidKind is returned when a mention kind name cannot be parsed
var ErrInvalidKind = errors.New("invalid mention kind")

// Kind is the kind of entity a mention refers to
type Kind int

// All possible Kind constants. KindMember is derived: members are found via the user pattern.
const (
	KindUser = Kind(iota)
	KindMember
	KindRole
	KindChannel
	KindEmote
	KindEveryone
	KindHere
)

var (
	userPattern     = regexp.MustCompile(`<@!?(\d+)>`)
	rolePattern     = regexp.MustCompile(`<@&(\d+)>`)
	channelPattern  = regexp.MustCompile(`<#(\d+)>`)
	emotePattern    = regexp.MustCompile(`<(a)?:([a-zA-Z0-9_]+):(\d+)>`)
	everyonePattern = regexp.MustCompile(`@everyone`)
	herePattern     = regexp.MustCompile(`@here`)

	kindNames = map[Kind]string{
		KindUser:     "user",
		KindMember:   "member",
		KindRole:     "role",
		KindChannel:  "channel",
		KindEmote:    "emote",
		KindEveryone: "everyone",
		KindHere:     "here",
	}
	allKinds = []Kind{KindUser, KindMember, KindRole, KindChannel, KindEmote, KindEveryone, KindHere}
)

// Kinds returns all mention kinds
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// ParseKind converts a kind name (case-insensitive) to a Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

// ParseKinds converts a list of kind names to kinds, failing on the first invalid name
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Pattern returns the regular expression that finds mentions of this kind, or nil for unknown kinds
func (k Kind) Pattern() *regexp.Regexp {
	switch k {
	case KindUser, KindMember:
		return userPattern
	case KindRole:
		return rolePattern
	case KindChannel:
		return channelPattern
	case KindEmote:
		return emotePattern
	case KindEveryone:
		return everyonePattern
	case KindHere:
		return herePattern
	default:
		return nil
	}
}

// Mass returns true for @everyone and @here, which are presence flags and not entities
func (k Kind) Mass() bool {
	return k == KindEveryone || k == KindHere
}

// idGroup is the submatch index of the snowflake, or 0 for kinds without an ID
func (k Kind) idGroup() int {
	switch k {
	case KindUser, KindMember, KindRole, KindChannel:
		return 1
	case KindEmote:
		return 3
	default:
		return 0
	}
}
