// Package registry provides a global registry for puzzle factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// Game is the contract every puzzle engine implements.
// Engines contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping and rendering to the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "fifteen", "2048").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// IsFinished reports whether the game has reached a terminal state.
	IsFinished() bool

	// ApplyMove attempts a move and reports whether it was applied.
	// Rejected input is not an error.
	ApplyMove(m core.Move) bool

	// Score returns the cumulative score.
	Score() int

	// WindowSize returns the preferred board drawing area as (rows, cols).
	WindowSize() (rows, cols int)

	// Board returns a copy of the current board.
	Board() core.Board

	// Render draws the board into dst, which is pre-cleared and at least
	// WindowSize in size.
	Render(dst *core.Screen)

	// Ranking tells the platform whether low or high scores are better.
	Ranking() core.Ranking
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Ranking core.Ranking
}

// Factory creates a fresh game instance drawing randomness from rng.
type Factory func(rng core.Rand) Game

// ErrUnknownGame is returned by Create for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Read metadata from a throwaway instance
	g := f(core.NewRand(1))
	infos[id] = GameInfo{
		ID:      id,
		Title:   g.Title(),
		Ranking: g.Ranking(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns ErrUnknownGame if the game ID is not registered.
func Create(id string, rng core.Rand) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(rng), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
