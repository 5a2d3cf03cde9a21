// Package hud provides a small diagnostic overlay: a set of named items
// that accumulate metrics and render as positioned text lines.
//
// The item set is configured through an env-style string (see FromEnv),
// typically "fps,devinfo". Items render top to bottom from a fixed margin,
// each item returning the position for the next one.
package hud

import (
	"os"
	"strings"
	"time"
)

// EnvVar is the environment variable FromEnv reads the configuration from.
const EnvVar = "ARX_HUD"

// Pos is a position in overlay coordinates, pixels from the top-left.
type Pos struct {
	X float32
	Y float32
}

// Item is a single overlay element.
type Item interface {
	// Update accumulates per-frame state. Called once per frame before
	// rendering. Items without per-frame state may ignore it.
	Update(now time.Time)

	// Render draws the item at pos and returns the position for the
	// next item.
	Render(r *Renderer, pos Pos) Pos
}

// ItemSet holds the enabled overlay items in render order.
type ItemSet struct {
	enableFull bool
	enabled    map[string]struct{}
	items      []Item
}

// NewItemSet parses an overlay configuration string.
//
// Recognized forms: "full" enables every item, "1" enables the devinfo
// and fps items, anything else is a comma-separated list of item names.
// An empty string enables nothing.
func NewItemSet(config string) *ItemSet {
	s := &ItemSet{enabled: make(map[string]struct{})}

	switch config {
	case "full":
		// Just enable everything.
		s.enableFull = true
	case "1":
		s.enabled["devinfo"] = struct{}{}
		s.enabled["fps"] = struct{}{}
	default:
		for _, name := range strings.Split(config, ",") {
			if name != "" {
				s.enabled[name] = struct{}{}
			}
		}
	}

	return s
}

// FromEnv builds an ItemSet from the ARX_HUD environment variable.
func FromEnv() *ItemSet {
	return NewItemSet(os.Getenv(EnvVar))
}

// Enabled reports whether the named item is enabled by the configuration.
func (s *ItemSet) Enabled(name string) bool {
	if s.enableFull {
		return true
	}
	_, ok := s.enabled[name]
	return ok
}

// Add registers the named item if the configuration enables it. The
// factory only runs for enabled items, so disabled items cost nothing.
// Items render in registration order.
func (s *ItemSet) Add(name string, create func() Item) {
	if !s.Enabled(name) {
		return
	}
	s.items = append(s.items, create())
}

// Len returns the number of registered items.
func (s *ItemSet) Len() int { return len(s.items) }

// Update forwards the current time to every registered item.
func (s *ItemSet) Update() {
	s.UpdateAt(time.Now())
}

// UpdateAt forwards now to every registered item. Split out from Update
// so tests can drive item timing deterministically.
func (s *ItemSet) UpdateAt(now time.Time) {
	for _, item := range s.items {
		item.Update(now)
	}
}

// Render draws all registered items top to bottom starting at the
// overlay margin.
func (s *ItemSet) Render(r *Renderer) {
	pos := Pos{X: 8.0, Y: 8.0}
	for _, item := range s.items {
		pos = item.Render(r, pos)
	}
}
