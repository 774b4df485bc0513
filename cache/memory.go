// Package cache provides the entity registries that mentions are resolved against
package cache

import (
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
	"sync"
)

// Memory is a thread-safe in-memory entity cache. Entities are stored by pointer; callers must
// not modify them after they were added.
type Memory struct {
	guilds   map[entity.ID]*entity.Guild
	users    map[entity.ID]*entity.User
	members  map[entity.ID]map[entity.ID]*entity.Member // guild -> user -> member
	roles    map[entity.ID]*entity.Role
	channels map[entity.ID]*entity.Channel
	emoji    map[entity.ID]*entity.CustomEmoji
	mu       sync.RWMutex
}

var _ mention.Lookup = (*Memory)(nil)

// Stats holds the number of cached entities per type
type Stats struct {
	Guilds   int
	Users    int
	Members  int
	Roles    int
	Channels int
	Emoji    int
}

// NewMemory creates an empty cache
func NewMemory() *Memory {
	return &Memory{
		guilds:   make(map[entity.ID]*entity.Guild),
		users:    make(map[entity.ID]*entity.User),
		members:  make(map[entity.ID]map[entity.ID]*entity.Member),
		roles:    make(map[entity.ID]*entity.Role),
		channels: make(map[entity.ID]*entity.Channel),
		emoji:    make(map[entity.ID]*entity.CustomEmoji),
	}
}

// AddGuild adds or replaces a guild
func (c *Memory) AddGuild(guild *entity.Guild) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guilds[guild.ID] = guild
}

// AddUser adds or replaces a user
func (c *Memory) AddUser(user *entity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = user
}

// AddMember adds or replaces a member. The member's user is added as well.
func (c *Memory) AddMember(member *entity.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if member.User == nil {
		return
	}
	if _, ok := c.members[member.Guild]; !ok {
		c.members[member.Guild] = make(map[entity.ID]*entity.Member)
	}
	c.members[member.Guild][member.User.ID] = member
	c.users[member.User.ID] = member.User
}

// AddRole adds or replaces a role
func (c *Memory) AddRole(role *entity.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roles[role.ID] = role
}

// AddChannel adds or replaces a channel
func (c *Memory) AddChannel(channel *entity.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[channel.ID] = channel
}

// AddEmoji adds or replaces a custom emoji
func (c *Memory) AddEmoji(emoji *entity.CustomEmoji) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emoji[emoji.ID] = emoji
}

// Guild returns the guild with the given ID
func (c *Memory) Guild(id entity.ID) (*entity.Guild, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	guild, ok := c.guilds[id]
	return guild, ok
}

// User returns the user with the given ID
func (c *Memory) User(id entity.ID) (*entity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	user, ok := c.users[id]
	return user, ok
}

// Member returns the member of the given guild
func (c *Memory) Member(guild, user entity.ID) (*entity.Member, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	members, ok := c.members[guild]
	if !ok {
		return nil, false
	}
	member, ok := members[user]
	return member, ok
}

// Role returns the role with the given ID, if it belongs to the given guild
func (c *Memory) Role(guild, id entity.ID) (*entity.Role, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	role, ok := c.roles[id]
	if !ok || role.Guild != guild {
		return nil, false
	}
	return role, true
}

// Channel returns the channel with the given ID. If guild is non-zero, the channel must belong to it.
func (c *Memory) Channel(guild, id entity.ID) (*entity.Channel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	channel, ok := c.channels[id]
	if !ok || (!guild.IsZero() && channel.Guild != guild) {
		return nil, false
	}
	return channel, true
}

// CustomEmoji returns the custom emoji with the given ID, regardless of its guild
func (c *Memory) CustomEmoji(id entity.ID) (*entity.CustomEmoji, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	emoji, ok := c.emoji[id]
	return emoji, ok
}

// Stats returns the number of cached entities
func (c *Memory) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	members := 0
	for _, m := range c.members {
		members += len(m)
	}
	return Stats{
		Guilds:   len(c.guilds),
		Users:    len(c.users),
		Members:  members,
		Roles:    len(c.roles),
		Channels: len(c.channels),
		Emoji:    len(c.emoji),
	}
}
