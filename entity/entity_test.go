package entity

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("175928847299117063")
	assert.Nil(t, err)
	assert.Equal(t, ID(175928847299117063), id)
	assert.Equal(t, "175928847299117063", id.String())
	assert.Equal(t, time.Date(2016, 4, 30, 11, 18, 25, 796000000, time.UTC), id.Time())

	_, err = ParseID("99999999999999999999")
	assert.Error(t, err)
	_, err = ParseID("-1")
	assert.Error(t, err)
	_, err = ParseID("")
	assert.Error(t, err)
}

func TestMentionTokens(t *testing.T) {
	user := &User{ID: 1, Name: "phil", Discriminator: "0"}
	member := &Member{User: user, Nick: "pheckel"}
	assert.Equal(t, "<@1>", user.Mention())
	assert.Equal(t, "<@!1>", member.Mention())
	assert.Equal(t, "<@&2>", (&Role{ID: 2}).Mention())
	assert.Equal(t, "<#3>", (&Channel{ID: 3}).Mention())
	assert.Equal(t, "<:blob:4>", (&CustomEmoji{ID: 4, Name: "blob"}).Mention())
	assert.Equal(t, "<a:blob:4>", (&CustomEmoji{ID: 4, Name: "blob", Animated: true}).Mention())
	assert.Equal(t, "phil", user.Tag())
	assert.Equal(t, "phil#1234", (&User{Name: "phil", Discriminator: "1234"}).Tag())
	assert.Equal(t, ID(1), member.Snowflake())
	assert.Equal(t, ID(0), (&Member{}).Snowflake())
}

func TestMemberRoles(t *testing.T) {
	member := &Member{User: &User{ID: 1, Name: "phil"}, Roles: []ID{10, 20}}
	assert.True(t, member.HasRole(10))
	assert.False(t, member.HasRole(30))
	assert.True(t, member.HasAnyRole([]ID{30, 20}))
	assert.False(t, member.HasAnyRole(nil))
	assert.Equal(t, "phil", member.DisplayName())
}

func TestChannelTypes(t *testing.T) {
	assert.True(t, ChannelTypeGuildText.IsText())
	assert.True(t, ChannelTypeGuildPublicThread.IsText())
	assert.True(t, ChannelTypeGuildPrivateThread.IsThread())
	assert.False(t, ChannelTypeGuildVoice.IsText())
	assert.False(t, ChannelTypeDM.IsText())
	assert.True(t, ChannelTypeDM.IsPrivate())
	assert.False(t, ChannelTypeDM.IsGuild())
	assert.True(t, ChannelTypeGuildForum.IsGuild())
	assert.False(t, ChannelType(99).IsGuild())
	assert.Equal(t, "news-thread", ChannelTypeGuildNewsThread.String())
	assert.Equal(t, "unknown(99)", ChannelType(99).String())

	parsed, err := ParseChannelType("private-thread")
	assert.Nil(t, err)
	assert.Equal(t, ChannelTypeGuildPrivateThread, parsed)
	_, err = ParseChannelType("hologram")
	assert.Error(t, err)

	thread := &Channel{ID: 5, Type: ChannelTypeGuildNewsThread, Thread: &ThreadMetadata{Owner: 1}}
	assert.True(t, thread.IsPublicThread())
	assert.False(t, (&Channel{Type: ChannelTypeGuildPrivateThread}).IsPublicThread())
}

func TestUnicodeEmojiCodepoints(t *testing.T) {
	thumbs := &UnicodeEmoji{Glyph: "\U0001F44D\U0001F3FB", Alias: "+1"}
	assert.Equal(t, "U+1f44dU+1f3fb", thumbs.Codepoints())
	assert.Equal(t, "\U0001F44D\U0001F3FB", thumbs.Mention())
}
