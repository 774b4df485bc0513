package entity

import (
	"fmt"
)

// User is the global identity of a Discord account
type User struct {
	ID            ID
	Name          string
	Discriminator string
	Bot           bool
}

var _ Mentionable = (*User)(nil)

// Snowflake returns the user ID
func (u *User) Snowflake() ID {
	return u.ID
}

// Mention returns the user mention token
func (u *User) Mention() string {
	return fmt.Sprintf("<@%s>", u.ID)
}

// Tag returns the name and discriminator of the user, or just the name for migrated accounts
func (u *User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Name
	}
	return fmt.Sprintf("%s#%s", u.Name, u.Discriminator)
}

// Member is the presence of a user in one specific guild
type Member struct {
	Guild ID
	User  *User
	Nick  string
	Roles []ID
}

var _ Mentionable = (*Member)(nil)

// Snowflake returns the ID of the underlying user, members don't have an ID of their own
func (m *Member) Snowflake() ID {
	if m.User == nil {
		return 0
	}
	return m.User.ID
}

// Mention returns the nickname mention token
func (m *Member) Mention() string {
	return fmt.Sprintf("<@!%s>", m.Snowflake())
}

// DisplayName returns the nickname, or the user name if the member has no nickname
func (m *Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	return m.User.Name
}

// HasRole returns true if the member has the given role
func (m *Member) HasRole(role ID) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole returns true if the member has at least one of the given roles
func (m *Member) HasAnyRole(roles []ID) bool {
	for _, r := range roles {
		if m.HasRole(r) {
			return true
		}
	}
	return false
}

// Role is a guild role
type Role struct {
	ID          ID
	Guild       ID
	Name        string
	Position    int
	Mentionable bool
}

var _ Mentionable = (*Role)(nil)

// Snowflake returns the role ID
func (r *Role) Snowflake() ID {
	return r.ID
}

// Mention returns the role mention token
func (r *Role) Mention() string {
	return fmt.Sprintf("<@&%s>", r.ID)
}

// Guild is a Discord server. It only carries what's needed to scope lookups.
type Guild struct {
	ID   ID
	Name string
}
