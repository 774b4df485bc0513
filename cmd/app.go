// Package cmd provides the mentionbot CLI application
package cmd

import (
	"errors"
	"fmt"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"heckel.io/mentionbot/bot"
	"heckel.io/mentionbot/cache"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
	"heckel.io/mentionbot/util"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// New creates a new CLI application
func New() *cli.App {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"MENTIONBOT_CONFIG_FILE"}, Value: "/etc/mentionbot/config.yml", DefaultText: "/etc/mentionbot/config.yml", Usage: "config file"},
		&cli.BoolFlag{Name: "debug", EnvVars: []string{"MENTIONBOT_DEBUG"}, Value: false, Usage: "enable debugging output"},
		altsrc.NewStringFlag(&cli.StringFlag{Name: "bot-token", Aliases: []string{"t"}, EnvVars: []string{"MENTIONBOT_BOT_TOKEN"}, DefaultText: "none", Usage: "bot token"}),
		altsrc.NewStringFlag(&cli.StringFlag{Name: "cache-file", Aliases: []string{"f"}, EnvVars: []string{"MENTIONBOT_CACHE_FILE"}, Value: config.DefaultCacheFile, DefaultText: config.DefaultCacheFile, Usage: "YAML or TOML cache snapshot, used by the parse command"}),
		altsrc.NewStringFlag(&cli.StringFlag{Name: "kinds", Aliases: []string{"k"}, EnvVars: []string{"MENTIONBOT_KINDS"}, DefaultText: "all", Usage: "comma-separated mention kinds to report [user, member, role, channel, emote, everyone, here]"}),
		altsrc.NewBoolFlag(&cli.BoolFlag{Name: "allow-everyone", Aliases: []string{"e"}, EnvVars: []string{"MENTIONBOT_ALLOW_EVERYONE"}, Usage: "report @everyone and @here mentions"}),
		altsrc.NewBoolFlag(&cli.BoolFlag{Name: "detached-emoji", Aliases: []string{"E"}, EnvVars: []string{"MENTIONBOT_DETACHED_EMOJI"}, Usage: "report custom emoji that are not in the cache"}),
		altsrc.NewIntFlag(&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, EnvVars: []string{"MENTIONBOT_WORKERS"}, Value: config.DefaultWorkers, Usage: "number of workers that build mention reports"}),
		altsrc.NewStringFlag(&cli.StringFlag{Name: "format", Aliases: []string{"o"}, EnvVars: []string{"MENTIONBOT_FORMAT"}, Value: string(config.DefaultFormat), DefaultText: string(config.DefaultFormat), Usage: "report format [text, json or yaml]"}),
	}
	return &cli.App{
		Name:                   "mentionbot",
		Usage:                  "Discord bot that reports who and what is mentioned in chat messages",
		UsageText:              "mentionbot [OPTION..] [COMMAND]",
		HideHelp:               true,
		HideVersion:            true,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Reader:                 os.Stdin,
		Writer:                 os.Stdout,
		ErrWriter:              os.Stderr,
		Action:                 execWatch,
		Before:                 initConfigFileInputSource("config", flags),
		Flags:                  flags,
		Commands: []*cli.Command{
			{
				Name:      "watch",
				Usage:     "connect to Discord and report the mentions of all incoming messages (default)",
				UsageText: "mentionbot [OPTION..] watch",
				Action:    execWatch,
			},
			{
				Name:      "parse",
				Usage:     "report the mentions of a message, resolved against the cache file",
				UsageText: "mentionbot [OPTION..] parse [--guild ID] [MESSAGE..]",
				Action:    execParse,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "guild", Aliases: []string{"g"}, Usage: "guild the message was sent in, private if not set"},
					&cli.StringFlag{Name: "id", Usage: "message ID shown in the report, random if not set"},
				},
			},
		},
	}
}

func execWatch(c *cli.Context) error {
	token := c.String("bot-token")
	if token == "" || token == "MUST_BE_SET" {
		return errors.New("missing bot token, pass --bot-token, set MENTIONBOT_BOT_TOKEN env variable or bot-token config option")
	}
	conf, err := parseConfig(c, token)
	if err != nil {
		return err
	}
	robot, err := bot.New(conf)
	if err != nil {
		return err
	}
	robot.SetReporter(bot.NewWriterReporter(c.App.Writer, conf.Format))

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs // Doesn't matter which
		log.Printf("Signal received. Finishing pending reports.")
		robot.Stop()
	}()

	// Run main bot, can be killed by signal
	if err := robot.Run(); err != nil {
		return err
	}

	log.Printf("Exiting.")
	return nil
}

func execParse(c *cli.Context) error {
	conf, err := parseConfig(c, c.String("bot-token"))
	if err != nil {
		return err
	}
	if !util.FileExists(conf.CacheFile) {
		return fmt.Errorf("cannot find cache file %s, set --cache-file, set MENTIONBOT_CACHE_FILE env variable, or cache-file config option", conf.CacheFile)
	}
	lookup, err := cache.Load(conf.CacheFile)
	if err != nil {
		return err
	}
	if conf.Debug {
		stats := lookup.Stats()
		log.Printf("Loaded %d guild(s), %d user(s), %d member(s), %d role(s), %d channel(s) and %d emoji from %s",
			stats.Guilds, stats.Users, stats.Members, stats.Roles, stats.Channels, stats.Emoji, conf.CacheFile)
	}
	text, err := util.ReadText(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}
	resolver := mention.NewPrivateResolver(lookup, conf.ResolverOptions()...)
	if guild := c.String("guild"); guild != "" {
		id, err := entity.ParseID(guild)
		if err != nil {
			return err
		} else if _, ok := lookup.Guild(id); !ok {
			return fmt.Errorf("guild %s not found in cache file %s", guild, conf.CacheFile)
		}
		resolver = mention.NewGuildResolver(lookup, id, conf.ResolverOptions()...)
	}
	m, err := mention.New(text, resolver, conf.AllowEveryone)
	if err != nil {
		return err
	}
	id := c.String("id")
	if id == "" {
		id = util.RandomID(10)
	}
	return bot.NewWriterReporter(c.App.Writer, conf.Format).Report(bot.NewReport(id, m, conf.Kinds))
}

func parseConfig(c *cli.Context, token string) (*config.Config, error) {
	kinds, err := config.ParseKinds(c.String("kinds"))
	if err != nil {
		return nil, err
	}
	format, err := config.ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}
	workers := c.Int("workers")
	if workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}
	conf := config.New(token)
	conf.CacheFile = c.String("cache-file")
	conf.Kinds = kinds
	conf.AllowEveryone = c.Bool("allow-everyone")
	conf.DetachedEmoji = c.Bool("detached-emoji")
	conf.Workers = workers
	conf.Format = format
	conf.Debug = c.Bool("debug")
	return conf, nil
}

// initConfigFileInputSource is like altsrc.InitInputSourceWithContext and altsrc.NewYamlSourceFromFlagFunc, but checks
// if the config flag is exists and only loads it if it does. If the flag is set and the file exists, it fails.
func initConfigFileInputSource(configFlag string, flags []cli.Flag) cli.BeforeFunc {
	return func(context *cli.Context) error {
		configFile := context.String(configFlag)
		if context.IsSet(configFlag) && !util.FileExists(configFile) {
			return fmt.Errorf("config file %s does not exist", configFile)
		} else if !context.IsSet(configFlag) && !util.FileExists(configFile) {
			return nil
		}
		inputSource, err := altsrc.NewYamlSourceFromFile(configFile)
		if err != nil {
			return err
		}
		return altsrc.ApplyInputSourceValues(context, inputSource, flags)
	}
}
