package bot

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"heckel.io/mentionbot/config"
	"heckel.io/mentionbot/entity"
	"heckel.io/mentionbot/glyph"
	"heckel.io/mentionbot/mention"
	"io"
	"strings"
	"sync"
)

// Report summarizes the mentions of a single message
type Report struct {
	Message  string         `json:"message,omitempty" yaml:"message,omitempty"`
	Guild    string         `json:"guild,omitempty" yaml:"guild,omitempty"`
	Everyone bool           `json:"everyone" yaml:"everyone"`
	Here     bool           `json:"here" yaml:"here"`
	Mentions []*ReportEntry `json:"mentions" yaml:"mentions"`
	Emoji    []string       `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// ReportEntry is a single mentioned entity, in order of first appearance
type ReportEntry struct {
	Kind    string `json:"kind" yaml:"kind"`
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Mention string `json:"mention" yaml:"mention"`
	Count   int    `json:"count" yaml:"count"`
}

// Reporter receives the reports of all processed messages
type Reporter interface {
	Report(r *Report) error
}

// NewReport builds the report for the mentions of the given kinds. Unicode emoji are included
// whenever custom emotes are requested.
func NewReport(id string, m *mention.Mentions, kinds []mention.Kind) *Report {
	if len(kinds) == 0 {
		kinds = mention.Kinds()
	}
	r := &Report{
		Message:  id,
		Mentions: make([]*ReportEntry, 0),
	}
	if m.Guild() != 0 {
		r.Guild = m.Guild().String()
	}
	for _, kind := range kinds {
		switch kind {
		case mention.KindEveryone:
			r.Everyone = m.Mass(kind)
		case mention.KindHere:
			r.Here = m.Mass(kind)
		case mention.KindEmote:
			for _, e := range glyph.Scan(m.Content()) {
				r.Emoji = append(r.Emoji, e.Glyph)
			}
		}
	}
	for _, mentionable := range m.GetMentions(kinds...) {
		r.Mentions = append(r.Mentions, newReportEntry(m, mentionable))
	}
	return r
}

func newReportEntry(m *mention.Mentions, mentionable entity.Mentionable) *ReportEntry {
	entry := &ReportEntry{
		ID:      mentionable.Snowflake().String(),
		Mention: mentionable.Mention(),
	}
	switch e := mentionable.(type) {
	case *entity.User:
		entry.Kind, entry.Name, entry.Count = mention.KindUser.String(), e.Name, m.UsersBag().Count(e.Snowflake())
	case *entity.Member:
		entry.Kind, entry.Name, entry.Count = mention.KindMember.String(), e.DisplayName(), m.MembersBag().Count(e.Snowflake())
	case *entity.Role:
		entry.Kind, entry.Name, entry.Count = mention.KindRole.String(), e.Name, m.RolesBag().Count(e.Snowflake())
	case *entity.Channel:
		entry.Kind, entry.Name, entry.Count = mention.KindChannel.String(), e.Name, m.ChannelsBag().Count(e.Snowflake())
	case *entity.CustomEmoji:
		entry.Kind, entry.Name, entry.Count = mention.KindEmote.String(), e.Name, m.EmotesBag().Count(e.Snowflake())
	}
	return entry
}

// Empty returns true if nothing at all was mentioned
func (r *Report) Empty() bool {
	return !r.Everyone && !r.Here && len(r.Mentions) == 0 && len(r.Emoji) == 0
}

// String returns the report in the text format
func (r *Report) String() string {
	var sb strings.Builder
	prefix := "[message]"
	if r.Message != "" {
		prefix = fmt.Sprintf("[message %s]", r.Message)
	}
	sb.WriteString(fmt.Sprintf("%s %d mention(s), everyone=%t, here=%t\n", prefix, len(r.Mentions), r.Everyone, r.Here))
	for _, e := range r.Mentions {
		sb.WriteString(fmt.Sprintf("%s - %s %s %s (%s) x%d\n", prefix, e.Kind, e.ID, e.Name, e.Mention, e.Count))
	}
	if len(r.Emoji) > 0 {
		sb.WriteString(fmt.Sprintf("%s - emoji %s\n", prefix, strings.Join(r.Emoji, " ")))
	}
	return sb.String()
}

type writerReporter struct {
	writer io.Writer
	format config.Format
	mu     sync.Mutex
}

// NewWriterReporter creates a reporter that writes each report to w in the given format
func NewWriterReporter(w io.Writer, format config.Format) Reporter {
	return &writerReporter{
		writer: w,
		format: format,
	}
}

func (w *writerReporter) Report(r *Report) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.format {
	case config.JSON:
		return json.NewEncoder(w.writer).Encode(r)
	case config.YAML:
		if _, err := io.WriteString(w.writer, "---\n"); err != nil {
			return err
		}
		encoder := yaml.NewEncoder(w.writer)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	default:
		_, err := io.WriteString(w.writer, r.String())
		return err
	}
}
