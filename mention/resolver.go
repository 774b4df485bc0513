package mention

import (
	"github.com/samber/mo"
	"heckel.io/mentionbot/entity"
)

// Lookup is the entity cache the resolvers read from. Implementations must not block, and must
// report a missing entity via the bool return rather than an error.
type Lookup interface {
	User(id entity.ID) (*entity.User, bool)
	Member(guild, user entity.ID) (*entity.Member, bool)
	Role(guild, id entity.ID) (*entity.Role, bool)
	Channel(guild, id entity.ID) (*entity.Channel, bool) // guild may be zero to search all channels
	CustomEmoji(id entity.ID) (*entity.CustomEmoji, bool)
}

// Resolver turns matches into entities. It is a set of functions, one per kind, so that the
// extraction logic is independent of the context (guild channel or private channel) a message
// was sent in. A nil function means the kind cannot be resolved in this context.
type Resolver struct {
	Guild   entity.ID // zero outside of guilds
	User    func(m Match) mo.Option[*entity.User]
	Member  func(m Match) mo.Option[*entity.Member]
	Role    func(m Match) mo.Option[*entity.Role]
	Channel func(m Match) mo.Option[*entity.Channel]
	Emoji   func(m Match) mo.Option[*entity.CustomEmoji]
}

// ResolverOption changes the behavior of the resolvers created by NewGuildResolver and
// NewPrivateResolver
type ResolverOption func(o *resolverOptions)

type resolverOptions struct {
	detachedEmoji bool
}

// WithDetachedEmoji makes emoji that are not in the cache resolve to a detached CustomEmoji,
// built from the name and animated flag in the mention text
func WithDetachedEmoji() ResolverOption {
	return func(o *resolverOptions) {
		o.detachedEmoji = true
	}
}

// NewGuildResolver creates a resolver for messages sent in a guild. Channels are only resolved
// if they belong to the guild.
func NewGuildResolver(lookup Lookup, guild entity.ID, opts ...ResolverOption) *Resolver {
	options := newResolverOptions(opts)
	return &Resolver{
		Guild: guild,
		User: func(m Match) mo.Option[*entity.User] {
			v, ok := lookup.User(m.ID)
			return mo.TupleToOption(v, ok)
		},
		Member: func(m Match) mo.Option[*entity.Member] {
			v, ok := lookup.Member(guild, m.ID)
			return mo.TupleToOption(v, ok)
		},
		Role: func(m Match) mo.Option[*entity.Role] {
			v, ok := lookup.Role(guild, m.ID)
			return mo.TupleToOption(v, ok)
		},
		Channel: func(m Match) mo.Option[*entity.Channel] {
			v, ok := lookup.Channel(guild, m.ID)
			return mo.TupleToOption(v, ok)
		},
		Emoji: emojiResolver(lookup, options),
	}
}

// NewPrivateResolver creates a resolver for messages sent in private channels. There is no
// member or role context, and channels are resolved from everything that is cached.
func NewPrivateResolver(lookup Lookup, opts ...ResolverOption) *Resolver {
	options := newResolverOptions(opts)
	return &Resolver{
		User: func(m Match) mo.Option[*entity.User] {
			v, ok := lookup.User(m.ID)
			return mo.TupleToOption(v, ok)
		},
		Channel: func(m Match) mo.Option[*entity.Channel] {
			v, ok := lookup.Channel(0, m.ID)
			return mo.TupleToOption(v, ok)
		},
		Emoji: emojiResolver(lookup, options),
	}
}

// HasGuild returns true if the resolver carries a guild context
func (r *Resolver) HasGuild() bool {
	return !r.Guild.IsZero()
}

// memberOf looks up the member for a user, outside of any match
func (r *Resolver) memberOf(user entity.ID) mo.Option[*entity.Member] {
	if !r.HasGuild() || r.Member == nil {
		return mo.None[*entity.Member]()
	}
	return r.Member(Match{Kind: KindMember, Offset: -1, ID: user})
}

func emojiResolver(lookup Lookup, options *resolverOptions) func(m Match) mo.Option[*entity.CustomEmoji] {
	return func(m Match) mo.Option[*entity.CustomEmoji] {
		if emoji, ok := lookup.CustomEmoji(m.ID); ok {
			return mo.Some(emoji)
		}
		if !options.detachedEmoji {
			return mo.None[*entity.CustomEmoji]()
		}
		return mo.Some(&entity.CustomEmoji{
			ID:       m.ID,
			Name:     m.Name(),
			Animated: m.Animated(),
			Detached: true,
		})
	}
}

func newResolverOptions(opts []ResolverOption) *resolverOptions {
	options := &resolverOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
