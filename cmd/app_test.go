package cmd

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"heckel.io/mentionbot/bot"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCache = `
users:
  - id: "123"
    name: phil
  - id: "789"
    name: lisa
guilds:
  - id: "1000"
    name: heckel
    roles:
      - id: "55"
        name: admins
    channels:
      - id: "456"
        name: general
    members:
      - user: "123"
        nick: pheckel
        roles: ["55"]
`

func TestParseGuildJSON(t *testing.T) {
	cacheFile := createCacheFile(t)
	out, err := runApp(t, "", "--cache-file", cacheFile, "--format", "json", "parse", "--guild", "1000", "--id", "m1", "hi <@123> <@&55> in <#456>")
	assert.Nil(t, err)
	var report bot.Report
	assert.Nil(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "m1", report.Message)
	assert.Equal(t, "1000", report.Guild)
	assert.Equal(t, 3, len(report.Mentions))
	assert.Equal(t, "member", report.Mentions[0].Kind)
	assert.Equal(t, "pheckel", report.Mentions[0].Name)
	assert.Equal(t, "role", report.Mentions[1].Kind)
	assert.Equal(t, "channel", report.Mentions[2].Kind)
}

func TestParsePrivateTextFromStdin(t *testing.T) {
	cacheFile := createCacheFile(t)
	out, err := runApp(t, "hey <@789> <@&55>\n", "--cache-file", cacheFile, "parse", "--id", "m2")
	assert.Nil(t, err)
	assert.Equal(t, "[message m2] 1 mention(s), everyone=false, here=false\n[message m2] - user 789 lisa (<@789>) x1\n", out)
}

func TestParseKindsAndEveryone(t *testing.T) {
	cacheFile := createCacheFile(t)
	out, err := runApp(t, "", "--cache-file", cacheFile, "--kinds", "everyone,role", "--allow-everyone", "--format", "yaml",
		"parse", "--guild", "1000", "--id", "m3", "@everyone <@123> <@&55>")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(out, "---\nmessage: m3\n"))
	assert.Contains(t, out, "everyone: true\n")
	assert.Contains(t, out, "kind: role\n")
	assert.NotContains(t, out, "kind: member")
}

func TestParseUnknownGuild(t *testing.T) {
	cacheFile := createCacheFile(t)
	_, err := runApp(t, "", "--cache-file", cacheFile, "parse", "--guild", "2000", "<@123>")
	assert.NotNil(t, err)
}

func TestParseInvalidOptions(t *testing.T) {
	cacheFile := createCacheFile(t)
	_, err := runApp(t, "", "--cache-file", cacheFile, "--kinds", "user,nobody", "parse", "<@123>")
	assert.NotNil(t, err)
	_, err = runApp(t, "", "--cache-file", cacheFile, "--format", "xml", "parse", "<@123>")
	assert.NotNil(t, err)
	_, err = runApp(t, "", "--cache-file", filepath.Join(t.TempDir(), "missing.yml"), "parse", "<@123>")
	assert.NotNil(t, err)
}

func TestWatchMissingToken(t *testing.T) {
	_, err := runApp(t, "", "watch")
	assert.EqualError(t, err, "missing bot token, pass --bot-token, set MENTIONBOT_BOT_TOKEN env variable or bot-token config option")
}

func TestConfigFileMissing(t *testing.T) {
	_, err := runApp(t, "", "--config", filepath.Join(t.TempDir(), "config.yml"), "parse", "<@123>")
	assert.NotNil(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cacheFile := createCacheFile(t)
	configFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configFile, []byte("cache-file: "+cacheFile+"\nformat: json\n"), 0600); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, "", "--config", configFile, "parse", "--id", "m4", "<@123>")
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(out, `{"message":"m4"`))
}

func createCacheFile(t *testing.T) string {
	file := filepath.Join(t.TempDir(), "cache.yml")
	if err := os.WriteFile(file, []byte(testCache), 0600); err != nil {
		t.Fatal(err)
	}
	return file
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	var stdout bytes.Buffer
	app := New()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"mentionbot"}, args...))
	return stdout.String(), err
}
