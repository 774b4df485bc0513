// Package entity contains the Discord entities that messages can mention: users, members, roles,
// channels and emoji, plus the snowflake ID type they are keyed by.
package entity

import (
	"fmt"
	"strconv"
	"time"
)

// DiscordEpoch is the first millisecond of 2015, the epoch of all Discord snowflakes
const DiscordEpoch = 1420070400000

// ID is a Discord snowflake
type ID uint64

// ParseID converts a base-10 string to an ID. It fails for empty strings, non-digits and
// values that overflow 64 bits.
func ParseID(s string) (ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return ID(id), nil
}

// MustParseID is like ParseID, but panics if the ID is invalid
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the base-10 representation of the ID, as it appears in message text
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsZero returns true if the ID is unset
func (id ID) IsZero() bool {
	return id == 0
}

// Time returns the creation time encoded in the snowflake
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(uint64(id)>>22 + DiscordEpoch)).UTC()
}

// Mentionable is implemented by all entities that can be referenced in message text
type Mentionable interface {
	// Snowflake returns the ID used in the mention token
	Snowflake() ID

	// Mention returns the mention token as it is sent over the wire, e.g. <@123>
	Mention() string
}
