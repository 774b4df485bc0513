package entity

import (
	"fmt"
)

// ChannelType is the type of a channel, using Discord's numeric values
type ChannelType int

// All known ChannelType constants
const (
	ChannelTypeGuildText          = ChannelType(0)
	ChannelTypeDM                 = ChannelType(1)
	ChannelTypeGuildVoice         = ChannelType(2)
	ChannelTypeGroupDM            = ChannelType(3)
	ChannelTypeGuildCategory      = ChannelType(4)
	ChannelTypeGuildNews          = ChannelType(5)
	ChannelTypeGuildNewsThread    = ChannelType(10)
	ChannelTypeGuildPublicThread  = ChannelType(11)
	ChannelTypeGuildPrivateThread = ChannelType(12)
	ChannelTypeGuildStageVoice    = ChannelType(13)
	ChannelTypeGuildForum         = ChannelType(15)
)

var channelTypeNames = map[ChannelType]string{
	ChannelTypeGuildText:          "text",
	ChannelTypeDM:                 "dm",
	ChannelTypeGuildVoice:         "voice",
	ChannelTypeGroupDM:            "group-dm",
	ChannelTypeGuildCategory:      "category",
	ChannelTypeGuildNews:          "news",
	ChannelTypeGuildNewsThread:    "news-thread",
	ChannelTypeGuildPublicThread:  "public-thread",
	ChannelTypeGuildPrivateThread: "private-thread",
	ChannelTypeGuildStageVoice:    "stage",
	ChannelTypeGuildForum:         "forum",
}

// ParseChannelType converts a channel type name (as returned by String) to a ChannelType
func ParseChannelType(name string) (ChannelType, error) {
	for t, n := range channelTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("invalid channel type %q", name)
}

func (t ChannelType) String() string {
	if name, ok := channelTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// IsThread returns true for all thread types
func (t ChannelType) IsThread() bool {
	return t == ChannelTypeGuildNewsThread || t == ChannelTypeGuildPublicThread || t == ChannelTypeGuildPrivateThread
}

// IsPrivate returns true for channels that exist outside of guilds
func (t ChannelType) IsPrivate() bool {
	return t == ChannelTypeDM || t == ChannelTypeGroupDM
}

// IsGuild returns true for channels that belong to a guild
func (t ChannelType) IsGuild() bool {
	_, known := channelTypeNames[t]
	return known && !t.IsPrivate()
}

// IsText returns true for guild channels that carry messages: text and news channels, and threads
func (t ChannelType) IsText() bool {
	return t == ChannelTypeGuildText || t == ChannelTypeGuildNews || t.IsThread()
}

// ThreadMetadata holds the thread-only attributes of a channel
type ThreadMetadata struct {
	Owner               ID
	Archived            bool
	Locked              bool
	AutoArchiveDuration int // minutes
	MessageCount        int // capped at 50 by Discord
	MemberCount         int // capped at 50 by Discord
}

// Channel is a guild channel, a thread or a private channel
type Channel struct {
	ID     ID
	Guild  ID // zero for private channels
	Parent ID // category for guild channels, parent channel for threads
	Name   string
	Type   ChannelType
	Thread *ThreadMetadata
}

var _ Mentionable = (*Channel)(nil)

// Snowflake returns the channel ID
func (c *Channel) Snowflake() ID {
	return c.ID
}

// Mention returns the channel mention token
func (c *Channel) Mention() string {
	return fmt.Sprintf("<#%s>", c.ID)
}

// IsPublicThread returns true for public and news threads
func (c *Channel) IsPublicThread() bool {
	return c.Type == ChannelTypeGuildPublicThread || c.Type == ChannelTypeGuildNewsThread
}
