package bot

import (
	"context"
	"errors"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"heckel.io/mentionbot/cache"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/mention"
	"log"
	"sync"
)

type discordConn struct {
	config  *config.Config
	session *discordgo.Session
	lookup  *cache.State
	mu      sync.Mutex
}

func newDiscordConn(conf *config.Config) *discordConn {
	return &discordConn{
		config: conf,
	}
}

func (c *discordConn) Connect(ctx context.Context) (<-chan event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", c.config.Token))
	if err != nil {
		return nil, err
	}
	eventChan := make(chan event)
	discord.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if ev := c.translateMessageEvent(s, m); ev != nil {
			select {
			case eventChan <- ev:
			case <-ctx.Done():
			}
		}
	})
	discord.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent
	if err := discord.Open(); err != nil {
		return nil, err
	}
	if err := verifySession(discord); err != nil {
		return nil, err
	}
	c.session = discord
	c.lookup = cache.NewState(discord.State)
	log.Printf("Discord connected as user %s/%s", discord.State.User.Username, discord.State.User.ID)
	return eventChan, nil
}

func (c *discordConn) Lookup() mention.Lookup {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookup == nil {
		return nil
	}
	return c.lookup
}

func (c *discordConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	return c.session.Close()
}

func (c *discordConn) translateMessageEvent(s *discordgo.Session, m *discordgo.MessageCreate) event {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return nil
	}
	if m.GuildID != "" && m.Member != nil {
		// The gateway only sends members for small guilds; remember the author at least
		m.Member.User = m.Author
		m.Member.GuildID = m.GuildID
		if err := s.State.MemberAdd(m.Member); err != nil && c.config.Debug {
			log.Printf("[message %s] Cannot cache author member: %s", m.ID, err.Error())
		}
	}
	return &messageEvent{
		ID:              m.ID,
		Guild:           m.GuildID,
		Channel:         m.ChannelID,
		User:            m.Author.ID,
		Message:         m.Content,
		MentionEveryone: m.MentionEveryone,
	}
}

// verifySession closes the session if the gateway did not report the bot user
func verifySession(discord *discordgo.Session) error {
	if discord.State == nil || discord.State.User == nil {
		_ = discord.Close()
		return errors.New("unexpected internal state")
	}
	return nil
}
