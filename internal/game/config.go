package game

import "github.com/samdwyer/zombiecruise/internal/gamedata"

// DefaultWrapWidth is the narration width when none is configured.
const DefaultWrapWidth = 79

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// DebugCommands enables the debug and cheat verbs.
	DebugCommands bool

	// WrapWidth is the column narration is wrapped at. 0 means DefaultWrapWidth.
	WrapWidth int

	// Balance is the pacing and odds table. The zero value means the embedded table.
	Balance gamedata.Balance

	// Tables is the narration text. nil means the embedded tables.
	Tables *gamedata.Tables
}

func (c Config) withDefaults() Config {
	if c.WrapWidth <= 0 {
		c.WrapWidth = DefaultWrapWidth
	}
	if c.Balance == (gamedata.Balance{}) {
		c.Balance = gamedata.DefaultBalance()
	}
	if c.Tables == nil {
		c.Tables = gamedata.MustLoadTables()
	}
	return c
}
