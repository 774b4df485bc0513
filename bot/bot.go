// Package bot watches chat messages and reports who and what they mention
package bot

import (
	"context"
	"errors"
	"fmt"
	"github.com/gammazero/workerpool"
	"golang.org/x/sync/errgroup"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/mention"
	"log"
	"os"
	"sync"
)

// Bot is the main struct that connects to the platform and hands every message to the worker pool
type Bot struct {
	config   *config.Config
	conn     conn
	reporter Reporter
	pool     *workerpool.WorkerPool
	ctx      context.Context
	cancelFn context.CancelFunc
	mu       sync.RWMutex
}

// New creates a new Bot instance
func New(conf *config.Config) (*Bot, error) {
	if conf.Workers <= 0 {
		return nil, fmt.Errorf("invalid number of workers: %d", conf.Workers)
	}
	var conn conn
	switch conf.Platform() {
	case config.Discord:
		conn = newDiscordConn(conf)
	case config.Mem:
		conn = newMemConn(conf)
	default:
		return nil, fmt.Errorf("invalid type: %s", conf.Platform())
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Bot{
		config:   conf,
		conn:     conn,
		reporter: NewWriterReporter(os.Stdout, conf.Format),
		pool:     workerpool.New(conf.Workers),
		ctx:      ctx,
		cancelFn: cancel,
	}, nil
}

// SetReporter replaces the default reporter, which prints reports to stdout
func (b *Bot) SetReporter(reporter Reporter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reporter = reporter
}

// Run runs the bot in the foreground indefinitely or until Stop is called.
// This method does not return unless there is an error, or if gracefully shut down via Stop.
func (b *Bot) Run() error {
	eventChan, err := b.conn.Connect(b.ctx)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(b.ctx)
	g.Go(func() error {
		return b.handleEvents(ctx, eventChan)
	})
	g.Go(func() error {
		<-ctx.Done()
		return b.conn.Close()
	})
	err = g.Wait()
	b.pool.StopWait()
	return err
}

// Stop gracefully shuts down the bot, waiting for all pending reports
func (b *Bot) Stop() {
	log.Printf("Stopping bot, waiting for %d queued message(s)", b.pool.WaitingQueueSize())
	b.cancelFn()
}

func (b *Bot) handleEvents(ctx context.Context, eventChan <-chan event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventChan:
			if !ok {
				return errors.New("unexpected end of event stream")
			}
			switch e := ev.(type) {
			case *messageEvent:
				b.handleMessageEvent(e)
			case *errorEvent:
				return e.Error
			default:
				// Ignore other events
			}
		}
	}
}

func (b *Bot) handleMessageEvent(ev *messageEvent) {
	b.pool.Submit(func() {
		if err := b.processMessage(ev); err != nil {
			log.Printf("[message %s] Cannot process message: %s", ev.ID, err.Error())
		}
	})
}

func (b *Bot) processMessage(ev *messageEvent) error {
	resolver, err := b.resolverFor(ev)
	if err != nil {
		return err
	}
	m, err := mention.New(ev.Message, resolver, ev.MentionEveryone && b.config.AllowEveryone)
	if err != nil {
		return err
	}
	report := NewReport(ev.ID, m, b.config.Kinds)
	if report.Empty() {
		if b.config.Debug {
			log.Printf("[message %s] No mentions in message from user %s", ev.ID, ev.User)
		}
		return nil
	}
	b.mu.RLock()
	reporter := b.reporter
	b.mu.RUnlock()
	return reporter.Report(report)
}

func (b *Bot) resolverFor(ev *messageEvent) (*mention.Resolver, error) {
	lookup := b.conn.Lookup()
	if lookup == nil {
		return nil, errors.New("not connected")
	}
	if ev.Guild == "" {
		return mention.NewPrivateResolver(lookup, b.config.ResolverOptions()...), nil
	}
	guild, err := entity.ParseID(ev.Guild)
	if err != nil {
		return nil, err
	}
	return mention.NewGuildResolver(lookup, guild, b.config.ResolverOptions()...), nil
}
