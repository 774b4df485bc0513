package mention

import (
	"heckel.io/mentionbot/entity"
)

const testGuild = entity.ID(1000)

// testLookup is a minimal map-backed Lookup
type testLookup struct {
	users    map[entity.ID]*entity.User
	members  map[entity.ID]*entity.Member
	roles    map[entity.ID]*entity.Role
	channels map[entity.ID]*entity.Channel
	emoji    map[entity.ID]*entity.CustomEmoji
}

func newTestLookup() *testLookup {
	l := &testLookup{
		users:    make(map[entity.ID]*entity.User),
		members:  make(map[entity.ID]*entity.Member),
		roles:    make(map[entity.ID]*entity.Role),
		channels: make(map[entity.ID]*entity.Channel),
		emoji:    make(map[entity.ID]*entity.CustomEmoji),
	}
	phil := &entity.User{ID: 123, Name: "phil"}
	lisa := &entity.User{ID: 789, Name: "lisa"}
	l.users[phil.ID] = phil
	l.users[lisa.ID] = lisa
	l.users[1] = &entity.User{ID: 1, Name: "one"}
	l.members[phil.ID] = &entity.Member{Guild: testGuild, User: phil, Nick: "pheckel", Roles: []entity.ID{55}}
	l.members[lisa.ID] = &entity.Member{Guild: testGuild, User: lisa}
	l.roles[55] = &entity.Role{ID: 55, Guild: testGuild, Name: "admins"}
	l.roles[456] = &entity.Role{ID: 456, Guild: testGuild, Name: "collides-with-channel"}
	l.channels[456] = &entity.Channel{ID: 456, Guild: testGuild, Name: "general", Type: entity.ChannelTypeGuildText}
	l.channels[2] = &entity.Channel{ID: 2, Guild: testGuild, Name: "random", Type: entity.ChannelTypeGuildText}
	l.channels[3] = &entity.Channel{ID: 3, Guild: testGuild, Name: "lounge", Type: entity.ChannelTypeGuildVoice}
	l.channels[9] = &entity.Channel{ID: 9, Guild: 2000, Name: "elsewhere", Type: entity.ChannelTypeGuildText}
	l.emoji[77] = &entity.CustomEmoji{ID: 77, Guild: testGuild, Name: "blob"}
	return l
}

func (l *testLookup) User(id entity.ID) (*entity.User, bool) {
	u, ok := l.users[id]
	return u, ok
}

func (l *testLookup) Member(guild, user entity.ID) (*entity.Member, bool) {
	m, ok := l.members[user]
	if !ok || m.Guild != guild {
		return nil, false
	}
	return m, true
}

func (l *testLookup) Role(guild, id entity.ID) (*entity.Role, bool) {
	r, ok := l.roles[id]
	if !ok || r.Guild != guild {
		return nil, false
	}
	return r, true
}

func (l *testLookup) Channel(guild, id entity.ID) (*entity.Channel, bool) {
	c, ok := l.channels[id]
	if !ok || (guild != 0 && c.Guild != guild) {
		return nil, false
	}
	return c, true
}

func (l *testLookup) CustomEmoji(id entity.ID) (*entity.CustomEmoji, bool) {
	e, ok := l.emoji[id]
	return e, ok
}

func newGuildMentions(content string, everyone bool, opts ...ResolverOption) (*Mentions, *testLookup) {
	lookup := newTestLookup()
	m, err := New(content, NewGuildResolver(lookup, testGuild, opts...), everyone)
	if err != nil {
		panic(err)
	}
	return m, lookup
}

func newPrivateMentions(content string, everyone bool) (*Mentions, *testLookup) {
	lookup := newTestLookup()
	m, err := New(content, NewPrivateResolver(lookup), everyone)
	if err != nil {
		panic(err)
	}
	return m, lookup
}
