package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Def is a table entry addressable by identifier and by the names a player
// might type for it.
type Def interface {
	Key() string
	Names() []string
}

// Registry holds definitions in table order and resolves player nouns to them.
// A definition's position in the table is its numeric identifier.
type Registry[T Def] struct {
	all  []T
	byID map[string]int
	// names holds each definition's aliases, case folded and split into words.
	names [][][]string
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry[T Def](defs []T) *Registry[T] {
	fold := cases.Fold()
	r := &Registry[T]{
		all:   defs,
		byID:  make(map[string]int, len(defs)),
		names: make([][][]string, len(defs)),
	}
	for i, d := range defs {
		r.byID[d.Key()] = i
		for _, alias := range d.Names() {
			r.names[i] = append(r.names[i], strings.Fields(fold.String(alias)))
		}
	}
	return r
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.all[i]
}

// At returns the definition at a table position.
func (r *Registry[T]) At(i int) *T {
	return &r.all[i]
}

// All returns all definitions in table order.
func (r *Registry[T]) All() []T {
	return r.all
}

// Count returns the number of definitions.
func (r *Registry[T]) Count() int {
	return len(r.all)
}

// Resolve matches player words against every alias, case-insensitively, and
// returns the table position of the first definition with an alias appearing
// in the words. Multi-word aliases must appear as a consecutive run.
func (r *Registry[T]) Resolve(words []string) (int, bool) {
	if len(words) == 0 {
		return -1, false
	}
	fold := cases.Fold()
	folded := make([]string, len(words))
	for i, w := range words {
		folded[i] = fold.String(w)
	}
	for i, aliases := range r.names {
		for _, alias := range aliases {
			if containsRun(folded, alias) {
				return i, true
			}
		}
	}
	return -1, false
}

func containsRun(words, run []string) bool {
	if len(run) == 0 {
		return false
	}
	for start := 0; start+len(run) <= len(words); start++ {
		match := true
		for j := range run {
			if words[start+j] != run[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// =============================================================================
// Tables
// =============================================================================

const (
	expectedLocations  = 8
	expectedItems      = 8
	expectedCharacters = 8
	expectedPrologue   = 3
)

// Tables bundles every text table the game narrates from.
type Tables struct {
	Locations  *Registry[LocationDef]
	Items      *Registry[ItemDef]
	Characters *Registry[CharacterDef]
	Story      StoryDef
}

// LoadTables loads and checks all embedded text tables.
func LoadTables() (*Tables, error) {
	locations, err := LoadLocations()
	if err != nil {
		return nil, err
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	characters, err := LoadCharacters()
	if err != nil {
		return nil, err
	}
	story, err := LoadStory()
	if err != nil {
		return nil, err
	}

	var errs []error
	if len(locations) != expectedLocations {
		errs = append(errs, fmt.Errorf("locations.json: got %d locations, want %d", len(locations), expectedLocations))
	}
	if len(items) != expectedItems {
		errs = append(errs, fmt.Errorf("items.json: got %d items, want %d", len(items), expectedItems))
	}
	if len(characters) != expectedCharacters {
		errs = append(errs, fmt.Errorf("characters.json: got %d characters, want %d", len(characters), expectedCharacters))
	}
	if len(story.Prologue) != expectedPrologue {
		errs = append(errs, fmt.Errorf("story.json: got %d prologue stages, want %d", len(story.Prologue), expectedPrologue))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Tables{
		Locations:  NewRegistry(locations),
		Items:      NewRegistry(items),
		Characters: NewRegistry(characters),
		Story:      story,
	}, nil
}

// MustLoadTables loads the tables, panicking on error.
func MustLoadTables() *Tables {
	tables, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return tables
}
