// Package config provides the main configuration
package config

import (
	"heckel.io/mentionbot/mention"
	"runtime"
)

const (
	// DefaultWorkers defines the default number of workers that build mention reports
	DefaultWorkers = 4

	// DefaultFormat defines the default output format of mention reports
	DefaultFormat = Text

	// DefaultCacheFile is where the parse command looks for a cache snapshot if none is passed
	DefaultCacheFile = "/etc/mentionbot/cache.yml"
)

// Config is the main config struct for the application. Use New to instantiate a default config struct.
type Config struct {
	Token         string
	CacheFile     string
	Kinds         []mention.Kind
	AllowEveryone bool
	DetachedEmoji bool
	Workers       int
	Format        Format
	Debug         bool
}

// New instantiates a default new config
func New(token string) *Config {
	return &Config{
		Token:     token,
		CacheFile: DefaultCacheFile,
		Kinds:     mention.Kinds(),
		Workers:   defaultWorkers(),
		Format:    DefaultFormat,
	}
}

// Platform returns the target platform, based on the token
func (c *Config) Platform() Platform {
	if c.Token == string(Mem) {
		return Mem
	}
	return Discord
}

// ResolverOptions returns the options for the mention resolvers
func (c *Config) ResolverOptions() []mention.ResolverOption {
	opts := make([]mention.ResolverOption, 0)
	if c.DetachedEmoji {
		opts = append(opts, mention.WithDetachedEmoji())
	}
	return opts
}

func defaultWorkers() int {
	if n := runtime.NumCPU(); n < DefaultWorkers {
		return n
	}
	return DefaultWorkers
}
