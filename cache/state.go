package cache

import (
	"github.com/bwmarrin/discordgo"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
)

// State resolves entities from the discordgo gateway state, which is kept up to date by the
// session's event handlers. There is no global user registry in the gateway state, so users are
// found via the bot user, guild members and private channel recipients.
type State struct {
	state *discordgo.State
}

var _ mention.Lookup = (*State)(nil)

// NewState wraps a discordgo state
func NewState(state *discordgo.State) *State {
	return &State{state: state}
}

// User returns the user with the given ID
func (s *State) User(id entity.ID) (*entity.User, bool) {
	userID := id.String()
	s.state.RLock()
	defer s.state.RUnlock()
	if s.state.User != nil && s.state.User.ID == userID {
		return convertUser(s.state.User)
	}
	for _, g := range s.state.Guilds {
		for _, m := range g.Members {
			if m.User != nil && m.User.ID == userID {
				return convertUser(m.User)
			}
		}
	}
	for _, c := range s.state.PrivateChannels {
		for _, u := range c.Recipients {
			if u.ID == userID {
				return convertUser(u)
			}
		}
	}
	return nil, false
}

// Member returns the member of the given guild
func (s *State) Member(guild, user entity.ID) (*entity.Member, bool) {
	m, err := s.state.Member(guild.String(), user.String())
	if err != nil || m.User == nil {
		return nil, false
	}
	u, ok := convertUser(m.User)
	if !ok {
		return nil, false
	}
	roles := make([]entity.ID, 0, len(m.Roles))
	for _, r := range m.Roles {
		if id, err := entity.ParseID(r); err == nil {
			roles = append(roles, id)
		}
	}
	return &entity.Member{Guild: guild, User: u, Nick: m.Nick, Roles: roles}, true
}

// Role returns the role of the given guild
func (s *State) Role(guild, id entity.ID) (*entity.Role, bool) {
	r, err := s.state.Role(guild.String(), id.String())
	if err != nil {
		return nil, false
	}
	return &entity.Role{ID: id, Guild: guild, Name: r.Name, Position: r.Position, Mentionable: r.Mentionable}, true
}

// Channel returns the channel with the given ID. If guild is non-zero, the channel must belong to it.
func (s *State) Channel(guild, id entity.ID) (*entity.Channel, bool) {
	c, err := s.state.Channel(id.String())
	if err != nil {
		return nil, false
	}
	channel := convertChannel(c)
	if !guild.IsZero() && channel.Guild != guild {
		return nil, false
	}
	return channel, true
}

// CustomEmoji returns the custom emoji with the given ID from any guild in the state
func (s *State) CustomEmoji(id entity.ID) (*entity.CustomEmoji, bool) {
	emojiID := id.String()
	s.state.RLock()
	defer s.state.RUnlock()
	for _, g := range s.state.Guilds {
		for _, e := range g.Emojis {
			if e.ID == emojiID {
				guild, _ := entity.ParseID(g.ID)
				return &entity.CustomEmoji{ID: id, Guild: guild, Name: e.Name, Animated: e.Animated}, true
			}
		}
	}
	return nil, false
}

func convertUser(u *discordgo.User) (*entity.User, bool) {
	id, err := entity.ParseID(u.ID)
	if err != nil {
		return nil, false
	}
	return &entity.User{ID: id, Name: u.Username, Discriminator: u.Discriminator, Bot: u.Bot}, true
}

func convertChannel(c *discordgo.Channel) *entity.Channel {
	id, _ := entity.ParseID(c.ID)
	guild, _ := entity.ParseID(c.GuildID) // Empty for private channels
	parent, _ := entity.ParseID(c.ParentID)
	channel := &entity.Channel{
		ID:     id,
		Guild:  guild,
		Parent: parent,
		Name:   c.Name,
		Type:   entity.ChannelType(c.Type),
	}
	if c.ThreadMetadata != nil {
		owner, _ := entity.ParseID(c.OwnerID)
		channel.Thread = &entity.ThreadMetadata{
			Owner:               owner,
			Archived:            c.ThreadMetadata.Archived,
			Locked:              c.ThreadMetadata.Locked,
			AutoArchiveDuration: c.ThreadMetadata.AutoArchiveDuration,
			MessageCount:        c.MessageCount,
			MemberCount:         c.MemberCount,
		}
	}
	return channel
}
