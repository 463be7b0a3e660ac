// Package registry keeps the playable game variants. Games register a
// factory in init(), so the CLI and the terminal platform can list and
// create them without importing each variant directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Game is what the terminal platform drives. Implementations hold pure
// simulation state; input mapping, timing and drawing to the terminal
// stay in the platform.
type Game interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset prepares a fresh session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick with the actions collected
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State returns the current session status.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on a duplicate ID, which can only
// come from a programming error in an init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
