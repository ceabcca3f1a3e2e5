// Package config holds the user-tunable settings: dialog and command bar
// geometry, HUD timing and the theme name. Settings load from a TOML file
// layered over built-in defaults; a missing file is not an error.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme      string           `toml:"theme"`
	Dialog     DialogConfig     `toml:"dialog"`
	CommandBar CommandBarConfig `toml:"command_bar"`
	HUD        HUDConfig        `toml:"hud"`
}

type DialogConfig struct {
	Width      int `toml:"width"`
	MaxHeight  int `toml:"max_height"`
	MinHeight  int `toml:"min_height"`
	RowHeight  int `toml:"row_height"`
	// MaxVisibleRows caps the action window before scrolling kicks in.
	MaxVisibleRows int  `toml:"max_visible_rows"`
	ShowFooter     bool `toml:"show_footer"`
	ShowShortcuts  bool `toml:"show_shortcuts"`
}

type CommandBarConfig struct {
	Width       int `toml:"width"`
	VisibleRows int `toml:"visible_rows"`
}

type HUDConfig struct {
	// MessageTimeoutMS is how long a success message stays on screen.
	// Zero disables auto-expiry. Errors never auto-expire.
	MessageTimeoutMS int `toml:"message_timeout_ms"`
	HistoryLimit     int `toml:"history_limit"`
}

// Current is the process-wide configuration, set once by Init.
var Current = Default()

func Default() *Config {
	return &Config{
		Theme: "auto",
		Dialog: DialogConfig{
			Width:          58,
			MaxHeight:      18,
			MinHeight:      3,
			RowHeight:      1,
			MaxVisibleRows: 12,
			ShowFooter:     true,
			ShowShortcuts:  true,
		},
		CommandBar: CommandBarConfig{
			Width:       48,
			VisibleRows: 8,
		},
		HUD: HUDConfig{
			MessageTimeoutMS: 2500,
			HistoryLimit:     50,
		},
	}
}

// Load overlays TOML data on top of the receiver's current values.
func (c *Config) Load(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return err
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.Dialog.MinHeight > c.Dialog.MaxHeight {
		return fmt.Errorf("dialog: min_height %d exceeds max_height %d", c.Dialog.MinHeight, c.Dialog.MaxHeight)
	}
	if c.Dialog.RowHeight < 1 {
		return fmt.Errorf("dialog: row_height must be at least 1, got %d", c.Dialog.RowHeight)
	}
	if c.Dialog.MaxVisibleRows < 1 {
		return fmt.Errorf("dialog: max_visible_rows must be at least 1, got %d", c.Dialog.MaxVisibleRows)
	}
	if c.CommandBar.VisibleRows < 1 {
		return fmt.Errorf("command_bar: visible_rows must be at least 1, got %d", c.CommandBar.VisibleRows)
	}
	return nil
}

// MessageTimeout returns the HUD expiry as a duration.
func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.HUD.MessageTimeoutMS) * time.Millisecond
}
