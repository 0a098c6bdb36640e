package games

import (
	"github.com/Flapjacck/pbat/internal/engine"
)

// Version is reported by the HTTP API and stamped on stored sessions so
// old records can be traced to the rules that produced them.
const Version = "1.0.0"

// GameSpec describes a game for menus and the API.
type GameSpec struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MetricLabel string `json:"metric_label"`
}

// Outcome is the replayable result of a single round.
type Outcome struct {
	Metric      float64        `json:"metric"`
	MetricLabel string         `json:"metric_label"`
	Details     map[string]any `json:"details,omitempty"`
}

// Game is implemented by every arcade game that can be replayed from seeds.
type Game interface {
	// Spec returns metadata about the game.
	Spec() GameSpec

	// Replay recomputes the outcome for a (seeds, nonce) pair. params carry
	// game options such as the shoe's deck count.
	Replay(seeds engine.Seeds, nonce uint64, params map[string]any) (Outcome, error)
}

// registry holds all available games, keyed by spec ID.
var registry = make(map[string]Game)

// Register adds a game to the registry.
func Register(game Game) {
	registry[game.Spec().ID] = game
}

// Get retrieves a game by ID.
func Get(id string) (Game, bool) {
	game, ok := registry[id]
	return game, ok
}

// List returns the specs of all registered games.
func List() []GameSpec {
	specs := make([]GameSpec, 0, len(registry))
	for _, game := range registry {
		specs = append(specs, game.Spec())
	}
	return specs
}

func init() {
	Register(&BlackjackGame{})
	Register(&RouletteGame{})
}
