package config

// Platform defines the target chat application platform
type Platform string

// All possible Platform constants
const (
	Discord = Platform("discord")
	Mem     = Platform("mem") // In-memory, for testing
)

// Format defines how mention reports are printed
type Format string

// All possible Format constants
const (
	Text = Format("text")
	JSON = Format("json")
	YAML = Format("yaml")
)
