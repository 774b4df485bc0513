package cache

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/util"
	"os"
	"path/filepath"
	"strings"
)

var (
	yamlExtensions = []string{".yml", ".yaml"}
	tomlExtensions = []string{".toml"}
)

// ErrInvalidFixture is returned if a fixture file cannot be turned into a cache
var ErrInvalidFixture = errors.New("invalid fixture")

// fixture is the file format of a cache snapshot. IDs are strings, because YAML and TOML cannot
// represent all 64-bit snowflakes as integers.
type fixture struct {
	Users    []fixtureUser    `yaml:"users" toml:"users"`
	Guilds   []fixtureGuild   `yaml:"guilds" toml:"guilds"`
	Channels []fixtureChannel `yaml:"channels" toml:"channels"` // private channels
	Emoji    []fixtureEmoji   `yaml:"emoji" toml:"emoji"`       // emoji of guilds not in this file
}

type fixtureUser struct {
	ID            string `yaml:"id" toml:"id"`
	Name          string `yaml:"name" toml:"name"`
	Discriminator string `yaml:"discriminator" toml:"discriminator"`
	Bot           bool   `yaml:"bot" toml:"bot"`
}

type fixtureGuild struct {
	ID       string           `yaml:"id" toml:"id"`
	Name     string           `yaml:"name" toml:"name"`
	Roles    []fixtureRole    `yaml:"roles" toml:"roles"`
	Members  []fixtureMember  `yaml:"members" toml:"members"`
	Channels []fixtureChannel `yaml:"channels" toml:"channels"`
	Emoji    []fixtureEmoji   `yaml:"emoji" toml:"emoji"`
}

type fixtureRole struct {
	ID          string `yaml:"id" toml:"id"`
	Name        string `yaml:"name" toml:"name"`
	Position    int    `yaml:"position" toml:"position"`
	Mentionable bool   `yaml:"mentionable" toml:"mentionable"`
}

type fixtureMember struct {
	User  string   `yaml:"user" toml:"user"`
	Nick  string   `yaml:"nick" toml:"nick"`
	Roles []string `yaml:"roles" toml:"roles"`
}

type fixtureChannel struct {
	ID     string         `yaml:"id" toml:"id"`
	Name   string         `yaml:"name" toml:"name"`
	Type   string         `yaml:"type" toml:"type"`
	Parent string         `yaml:"parent" toml:"parent"`
	Thread *fixtureThread `yaml:"thread" toml:"thread"`
}

type fixtureThread struct {
	Owner    string `yaml:"owner" toml:"owner"`
	Archived bool   `yaml:"archived" toml:"archived"`
	Locked   bool   `yaml:"locked" toml:"locked"`
}

type fixtureEmoji struct {
	ID       string `yaml:"id" toml:"id"`
	Name     string `yaml:"name" toml:"name"`
	Animated bool   `yaml:"animated" toml:"animated"`
}

// Load reads a cache snapshot from a YAML (.yml, .yaml) or TOML (.toml) file
func Load(filename string) (*Memory, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var f fixture
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case util.Contains(yamlExtensions, ext):
		err = yaml.Unmarshal(b, &f)
	case util.Contains(tomlExtensions, ext):
		err = toml.Unmarshal(b, &f)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension for %s, use .yml or .toml", ErrInvalidFixture, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFixture, err.Error())
	}
	return f.build()
}

func (f *fixture) build() (*Memory, error) {
	c := NewMemory()
	for _, u := range f.Users {
		user, err := u.entity()
		if err != nil {
			return nil, err
		}
		c.AddUser(user)
	}
	for _, ch := range f.Channels {
		channel, err := ch.entity(0)
		if err != nil {
			return nil, err
		}
		c.AddChannel(channel)
	}
	for _, e := range f.Emoji {
		emoji, err := e.entity(0)
		if err != nil {
			return nil, err
		}
		c.AddEmoji(emoji)
	}
	for _, g := range f.Guilds {
		if err := g.build(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (g *fixtureGuild) build(c *Memory) error {
	guildID, err := parseID("guild", g.ID)
	if err != nil {
		return err
	}
	c.AddGuild(&entity.Guild{ID: guildID, Name: g.Name})
	for _, r := range g.Roles {
		id, err := parseID("role", r.ID)
		if err != nil {
			return err
		}
		c.AddRole(&entity.Role{ID: id, Guild: guildID, Name: r.Name, Position: r.Position, Mentionable: r.Mentionable})
	}
	for _, ch := range g.Channels {
		channel, err := ch.entity(guildID)
		if err != nil {
			return err
		}
		c.AddChannel(channel)
	}
	for _, e := range g.Emoji {
		emoji, err := e.entity(guildID)
		if err != nil {
			return err
		}
		c.AddEmoji(emoji)
	}
	for _, m := range g.Members {
		userID, err := parseID("member", m.User)
		if err != nil {
			return err
		}
		user, ok := c.User(userID)
		if !ok {
			return fmt.Errorf("%w: member %s of guild %s refers to unknown user", ErrInvalidFixture, m.User, g.ID)
		}
		roles := make([]entity.ID, 0, len(m.Roles))
		for _, r := range m.Roles {
			roleID, err := parseID("member role", r)
			if err != nil {
				return err
			}
			if _, ok := c.Role(guildID, roleID); !ok {
				return fmt.Errorf("%w: member %s of guild %s has unknown role %s", ErrInvalidFixture, m.User, g.ID, r)
			}
			roles = append(roles, roleID)
		}
		c.AddMember(&entity.Member{Guild: guildID, User: user, Nick: m.Nick, Roles: roles})
	}
	return nil
}

func (u *fixtureUser) entity() (*entity.User, error) {
	id, err := parseID("user", u.ID)
	if err != nil {
		return nil, err
	}
	return &entity.User{ID: id, Name: u.Name, Discriminator: u.Discriminator, Bot: u.Bot}, nil
}

func (ch *fixtureChannel) entity(guild entity.ID) (*entity.Channel, error) {
	id, err := parseID("channel", ch.ID)
	if err != nil {
		return nil, err
	}
	channelType := entity.ChannelTypeGuildText
	if guild.IsZero() {
		channelType = entity.ChannelTypeDM
	}
	if ch.Type != "" {
		channelType, err = entity.ParseChannelType(ch.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: channel %s: %s", ErrInvalidFixture, ch.ID, err.Error())
		}
	}
	channel := &entity.Channel{ID: id, Guild: guild, Name: ch.Name, Type: channelType}
	if ch.Parent != "" {
		if channel.Parent, err = parseID("channel parent", ch.Parent); err != nil {
			return nil, err
		}
	}
	if ch.Thread != nil {
		channel.Thread = &entity.ThreadMetadata{Archived: ch.Thread.Archived, Locked: ch.Thread.Locked}
		if ch.Thread.Owner != "" {
			if channel.Thread.Owner, err = parseID("thread owner", ch.Thread.Owner); err != nil {
				return nil, err
			}
		}
	}
	return channel, nil
}

func (e *fixtureEmoji) entity(guild entity.ID) (*entity.CustomEmoji, error) {
	id, err := parseID("emoji", e.ID)
	if err != nil {
		return nil, err
	}
	return &entity.CustomEmoji{ID: id, Guild: guild, Name: e.Name, Animated: e.Animated}, nil
}

func parseID(what string, s string) (entity.ID, error) {
	id, err := entity.ParseID(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %s", ErrInvalidFixture, what, err.Error())
	}
	return id, nil
}
