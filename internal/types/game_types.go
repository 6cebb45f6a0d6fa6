package types

// GameResult represents the outcome of a single game
type GameResult struct {
	GameName string                 `json:"game_name"`
	Score    int                    `json:"score"`
	Duration float64                `json:"duration"`
	Metadata map[string]interface{} `json:"metadata"`
}

// ShowcaseStats summarizes a run through every registered game
type ShowcaseStats struct {
	TotalScore    int          `json:"total_score"`
	GamesPlayed   int          `json:"games_played"`
	TotalDuration float64      `json:"total_duration"`
	Results       []GameResult `json:"results"`
}

// Add records one finished game.
func (s *ShowcaseStats) Add(r GameResult) {
	s.TotalScore += r.Score
	s.GamesPlayed++
	s.TotalDuration += r.Duration
	s.Results = append(s.Results, r)
}

// Game interface that all games must implement
type Game interface {
	// GetName returns the display name of the game
	GetName() string

	// GetDescription returns a brief description
	GetDescription() string

	// Play runs the game until the player quits
	Play() (*GameResult, error)

	// GetDifficulty returns relative difficulty (1-10)
	GetDifficulty() int

	// IsAvailable checks if game can be played
	IsAvailable() bool
}
