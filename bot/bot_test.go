package bot

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
	"testing"
	"time"
)

const (
	maxWaitTime = 5 * time.Second
	testGuild   = "1000"
)

type memReporter struct {
	reports chan *Report
}

func (r *memReporter) Report(report *Report) error {
	r.reports <- report
	return nil
}

func TestBotReportGuildMessage(t *testing.T) {
	robot, conn, reporter := createBot(t, createConfig())
	go robot.Run()
	defer robot.Stop()

	conn.Event(&messageEvent{
		ID:      "msg-1",
		Guild:   testGuild,
		Channel: "456",
		User:    "789",
		Message: "hey <@!123> and <@&55>, see <#456> <:blob:77> 🎉 <@123>",
	})
	report := waitReport(t, reporter)
	assert.Equal(t, "msg-1", report.Message)
	assert.Equal(t, testGuild, report.Guild)
	assert.False(t, report.Everyone)
	assert.Equal(t, []string{"🎉"}, report.Emoji)
	assert.Equal(t, 4, len(report.Mentions))
	assert.Equal(t, &ReportEntry{Kind: "member", ID: "123", Name: "pheckel", Mention: "<@!123>", Count: 2}, report.Mentions[0])
	assert.Equal(t, &ReportEntry{Kind: "role", ID: "55", Name: "admins", Mention: "<@&55>", Count: 1}, report.Mentions[1])
	assert.Equal(t, &ReportEntry{Kind: "channel", ID: "456", Name: "general", Mention: "<#456>", Count: 1}, report.Mentions[2])
	assert.Equal(t, &ReportEntry{Kind: "emote", ID: "77", Name: "blob", Mention: "<:blob:77>", Count: 1}, report.Mentions[3])
}

func TestBotReportPrivateMessage(t *testing.T) {
	robot, conn, reporter := createBot(t, createConfig())
	go robot.Run()
	defer robot.Stop()

	conn.Event(&messageEvent{
		ID:      "msg-2",
		Channel: "dm",
		User:    "789",
		Message: "<@!123> <@&55> <@123>",
	})
	report := waitReport(t, reporter)
	assert.Equal(t, "", report.Guild)
	assert.Equal(t, 1, len(report.Mentions))
	assert.Equal(t, &ReportEntry{Kind: "user", ID: "123", Name: "phil", Mention: "<@123>", Count: 2}, report.Mentions[0])
}

func TestBotSkipEmptyReports(t *testing.T) {
	conf := createConfig()
	conf.Workers = 1 // Reports arrive in order
	robot, conn, reporter := createBot(t, conf)
	go robot.Run()
	defer robot.Stop()

	conn.Event(&messageEvent{ID: "msg-3", Guild: testGuild, Message: "nothing to see <@999>"})
	conn.Event(&messageEvent{ID: "msg-4", Guild: testGuild, Message: "<@789>"})
	report := waitReport(t, reporter)
	assert.Equal(t, "msg-4", report.Message)
	assert.Equal(t, "789", report.Mentions[0].ID)
}

func TestBotMassMentionRequiresConfig(t *testing.T) {
	conf := createConfig()
	robot, _, reporter := createBot(t, conf)

	ev := &messageEvent{ID: "msg-5", Guild: testGuild, Message: "@everyone lunch", MentionEveryone: true}
	assert.Nil(t, robot.processMessage(ev))
	assert.Equal(t, 0, len(reporter.reports))

	conf.AllowEveryone = true
	assert.Nil(t, robot.processMessage(ev))
	report := waitReport(t, reporter)
	assert.True(t, report.Everyone)
	assert.False(t, report.Here)
	assert.Empty(t, report.Mentions)
}

func TestBotMassMentionNotAllowedByPlatform(t *testing.T) {
	conf := createConfig()
	conf.AllowEveryone = true
	robot, _, reporter := createBot(t, conf)

	ev := &messageEvent{ID: "msg-6", Guild: testGuild, Message: "@here lunch", MentionEveryone: false}
	assert.Nil(t, robot.processMessage(ev))
	assert.Equal(t, 0, len(reporter.reports))
}

func TestBotKindsFilter(t *testing.T) {
	conf := createConfig()
	conf.Kinds = []mention.Kind{mention.KindChannel}
	robot, _, reporter := createBot(t, conf)

	ev := &messageEvent{ID: "msg-7", Guild: testGuild, Message: "<@123> in <#456> :tada:"}
	assert.Nil(t, robot.processMessage(ev))
	report := waitReport(t, reporter)
	assert.Equal(t, 1, len(report.Mentions))
	assert.Equal(t, "channel", report.Mentions[0].Kind)
	assert.Empty(t, report.Emoji)
}

func TestBotInvalidGuild(t *testing.T) {
	robot, _, _ := createBot(t, createConfig())
	err := robot.processMessage(&messageEvent{ID: "msg-8", Guild: "not-a-snowflake", Message: "<@123>"})
	assert.NotNil(t, err)
}

func TestBotStop(t *testing.T) {
	robot, conn, _ := createBot(t, createConfig())
	errChan := make(chan error)
	go func() {
		errChan <- robot.Run()
	}()
	robot.Stop()
	select {
	case err := <-errChan:
		assert.Nil(t, err)
	case <-time.After(maxWaitTime):
		t.Fatal("bot did not stop")
	}
	assert.True(t, conn.Closed())
}

func TestBotErrorEvent(t *testing.T) {
	robot, conn, _ := createBot(t, createConfig())
	conn.Event(&errorEvent{Error: errors.New("connection lost")})
	err := robot.Run()
	assert.EqualError(t, err, "connection lost")
	assert.True(t, conn.Closed())
}

func TestBotInvalidWorkers(t *testing.T) {
	conf := createConfig()
	conf.Workers = 0
	_, err := New(conf)
	assert.NotNil(t, err)
}

func createConfig() *config.Config {
	return config.New("mem")
}

func createBot(t *testing.T, conf *config.Config) (*Bot, *memConn, *memReporter) {
	robot, err := New(conf)
	if err != nil {
		t.Fatal(err)
	}
	conn := robot.conn.(*memConn)
	guild := entity.MustParseID(testGuild)
	phil := &entity.User{ID: 123, Name: "phil"}
	lisa := &entity.User{ID: 789, Name: "lisa"}
	conn.cache.AddGuild(&entity.Guild{ID: guild, Name: "heckel.io"})
	conn.cache.AddMember(&entity.Member{Guild: guild, User: phil, Nick: "pheckel", Roles: []entity.ID{55}})
	conn.cache.AddMember(&entity.Member{Guild: guild, User: lisa})
	conn.cache.AddRole(&entity.Role{ID: 55, Guild: guild, Name: "admins"})
	conn.cache.AddChannel(&entity.Channel{ID: 456, Guild: guild, Name: "general", Type: entity.ChannelTypeGuildText})
	conn.cache.AddEmoji(&entity.CustomEmoji{ID: 77, Guild: guild, Name: "blob"})
	reporter := &memReporter{reports: make(chan *Report, 10)}
	robot.SetReporter(reporter)
	return robot, conn, reporter
}

func waitReport(t *testing.T, reporter *memReporter) *Report {
	select {
	case report := <-reporter.reports:
		return report
	case <-time.After(maxWaitTime):
		t.Fatal("no report received")
		return nil
	}
}
