package bot

type event interface{}

type messageEvent struct {
	ID              string
	Guild           string // empty for private channels
	Channel         string
	User            string
	Message         string
	MentionEveryone bool // set by the platform if the author may mass-mention
}

type errorEvent struct {
	Error error
}
