package config

import (
	"fmt"
	"heckel.io/mentionbot/mention"
	"strings"
)

// ParseFormat converts a format string to a Format
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case Text:
		return Text, nil
	case JSON:
		return JSON, nil
	case YAML:
		return YAML, nil
	default:
		return "", fmt.Errorf("invalid format %q, must be 'text', 'json' or 'yaml'", format)
	}
}

// ParseKinds converts a comma-separated list of mention kinds. An empty list means all kinds.
func ParseKinds(kinds string) ([]mention.Kind, error) {
	if strings.TrimSpace(kinds) == "" {
		return mention.Kinds(), nil
	}
	return mention.ParseKinds(strings.Split(kinds, ","))
}
