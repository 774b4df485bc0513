package mention

import (
	"errors"
	"heckel.io/mentionbot/entity"
	"strings"
)

// ErrNilResolver is returned by New if no resolver is passed
var ErrNilResolver = errors.New("resolver must not be nil")

// Mass mention tokens
const (
	everyoneToken = "@everyone"
	hereToken     = "@here"
)

// Mentions holds the mentions of a single message. The content, resolver and everyone flag are
// fixed at construction; the result lists are computed on first access and reused afterwards.
type Mentions struct {
	content  string
	resolver *Resolver
	everyone bool

	users    cell[*entity.User]
	members  cell[*entity.Member]
	roles    cell[*entity.Role]
	channels cell[*entity.Channel]
	emotes   cell[*entity.CustomEmoji]
}

// New creates the mentions for the given message content. The allowsEveryone flag states whether
// the author is permitted to mass-mention in the channel, which is evaluated upstream.
func New(content string, resolver *Resolver, allowsEveryone bool) (*Mentions, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	return &Mentions{
		content:  content,
		resolver: resolver,
		everyone: allowsEveryone,
	}, nil
}

// Content returns the message text the mentions are parsed from
func (m *Mentions) Content() string {
	return m.content
}

// Guild returns the guild the message was sent in, or zero for private messages
func (m *Mentions) Guild() entity.ID {
	return m.resolver.Guild
}

// MentionsEveryone returns the permission flag passed to New
func (m *Mentions) MentionsEveryone() bool {
	return m.everyone
}

// Mass returns true if the message contains the @everyone or @here token and is allowed to
// mass-mention. It returns false for all other kinds.
func (m *Mentions) Mass(kind Kind) bool {
	switch kind {
	case KindEveryone:
		return m.isMass(everyoneToken)
	case KindHere:
		return m.isMass(hereToken)
	default:
		return false
	}
}

// Users returns the distinct mentioned users, in order of appearance
func (m *Mentions) Users() []*entity.User {
	return m.userExtraction().list()
}

// UsersBag returns every user mention, including repeats. It is recomputed on every call.
func (m *Mentions) UsersBag() *Bag[*entity.User] {
	return newBag(extract(m.content, KindUser, false, m.resolver.User).items)
}

// Members returns the distinct mentioned guild members. It is always empty outside of guilds.
func (m *Mentions) Members() []*entity.Member {
	return m.memberExtraction().list()
}

// MembersBag returns every member mention, including repeats
func (m *Mentions) MembersBag() *Bag[*entity.Member] {
	if !m.resolver.HasGuild() {
		return newBag[*entity.Member](nil)
	}
	return newBag(extract(m.content, KindMember, false, m.resolver.Member).items)
}

// Roles returns the distinct mentioned roles. It is always empty outside of guilds.
func (m *Mentions) Roles() []*entity.Role {
	return m.roleExtraction().list()
}

// RolesBag returns every role mention, including repeats
func (m *Mentions) RolesBag() *Bag[*entity.Role] {
	if !m.resolver.HasGuild() {
		return newBag[*entity.Role](nil)
	}
	return newBag(extract(m.content, KindRole, false, m.resolver.Role).items)
}

// Channels returns the distinct mentioned channels
func (m *Mentions) Channels() []*entity.Channel {
	return m.channelExtraction().list()
}

// ChannelsBag returns every channel mention, including repeats
func (m *Mentions) ChannelsBag() *Bag[*entity.Channel] {
	return newBag(extract(m.content, KindChannel, false, m.resolver.Channel).items)
}

// Emotes returns the distinct mentioned custom emoji
func (m *Mentions) Emotes() []*entity.CustomEmoji {
	return m.emoteExtraction().list()
}

// EmotesBag returns every custom emoji, including repeats
func (m *Mentions) EmotesBag() *Bag[*entity.CustomEmoji] {
	return newBag(extract(m.content, KindEmote, false, m.resolver.Emoji).items)
}

func (m *Mentions) userExtraction() *extraction[*entity.User] {
	return m.users.get(func() *extraction[*entity.User] {
		return extract(m.content, KindUser, true, m.resolver.User)
	})
}

func (m *Mentions) memberExtraction() *extraction[*entity.Member] {
	return m.members.get(func() *extraction[*entity.Member] {
		if !m.resolver.HasGuild() {
			return extract[*entity.Member](m.content, KindMember, true, nil)
		}
		return extract(m.content, KindMember, true, m.resolver.Member)
	})
}

func (m *Mentions) roleExtraction() *extraction[*entity.Role] {
	return m.roles.get(func() *extraction[*entity.Role] {
		if !m.resolver.HasGuild() {
			return extract[*entity.Role](m.content, KindRole, true, nil)
		}
		return extract(m.content, KindRole, true, m.resolver.Role)
	})
}

func (m *Mentions) channelExtraction() *extraction[*entity.Channel] {
	return m.channels.get(func() *extraction[*entity.Channel] {
		return extract(m.content, KindChannel, true, m.resolver.Channel)
	})
}

func (m *Mentions) emoteExtraction() *extraction[*entity.CustomEmoji] {
	return m.emotes.get(func() *extraction[*entity.CustomEmoji] {
		return extract(m.content, KindEmote, true, m.resolver.Emoji)
	})
}

func (m *Mentions) isMass(token string) bool {
	return m.everyone && strings.Contains(m.content, token)
}
