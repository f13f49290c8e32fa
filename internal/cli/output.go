package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case []LiveGame:
		o.printLiveGames(v)
	case LiveGame:
		o.printLiveGame(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	HighScore   int       `json:"high_score"`
	GamesPlayed int       `json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	Mode       string    `json:"mode"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SubmitResult response type
type SubmitResult struct {
	Success bool `json:"success"`
	Rank    int  `json:"rank"`
}

// PlayerStats response type
type PlayerStats struct {
	HighScore   int `json:"high_score"`
	GamesPlayed int `json:"games_played"`
	Rank        int `json:"rank"`
}

// Point response type
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LiveGame response type
type LiveGame struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Mode       string    `json:"mode"`
	StartedAt  time.Time `json:"started_at"`
	Snake      []Point   `json:"snake"`
	Food       Point     `json:"food"`
	Direction  string    `json:"direction"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.ID)
	fmt.Printf("High Score: %d\n", p.HighScore)
	fmt.Printf("Games Played: %d\n", p.GamesPlayed)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}

	fmt.Printf("Leaderboard (%d entries):\n", len(entries))
	for i, e := range entries {
		fmt.Printf("  %3d. %-20s %6d  [%s]\n", i+1, e.Username, e.Score, e.Mode)
	}
}

func (o *Output) printSubmitResult(r SubmitResult) {
	fmt.Printf("Score submitted, rank: %d\n", r.Rank)
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("High Score: %d\n", s.HighScore)
	fmt.Printf("Games Played: %d\n", s.GamesPlayed)
	fmt.Printf("Rank: %d\n", s.Rank)
}

func (o *Output) printLiveGames(games []LiveGame) {
	if len(games) == 0 {
		fmt.Println("No live games")
		return
	}

	fmt.Printf("Live Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  - %s: %s scoring %d [%s]\n", g.ID, g.PlayerName, g.Score, g.Mode)
	}
}

func (o *Output) printLiveGame(g LiveGame) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Player: %s (%s)\n", g.PlayerName, g.PlayerID)
	fmt.Printf("Score: %d\n", g.Score)
	fmt.Printf("Mode: %s\n", g.Mode)
	fmt.Printf("Direction: %s\n", g.Direction)
	fmt.Printf("Snake Length: %d\n", len(g.Snake))
	fmt.Printf("Food: (%d, %d)\n", g.Food.X, g.Food.Y)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
