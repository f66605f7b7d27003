package domain

// Message is the platform-independent view of an inbound command message.
// Text holds the raw argument string with prefix and command already stripped.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	Username  string
	Command   string
	Text      string
}

type GameSummary struct {
	ID          string
	Name        string
	Description string
	Category    string
}

type GameDetail struct {
	GameSummary
	MinPlayers int
	MaxPlayers int
	Playtime   string
	Rating     float64
	Year       int
	ImageURL   string
}

type Category struct {
	ID   string
	Name string
}

type Action string

const (
	Typing Action = "typing"
)
