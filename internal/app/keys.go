package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/homescreen/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Sections
	NextSection key.Binding
	PrevSection key.Binding
	Jump        key.Binding

	// Navigation within a panel
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Toggle   key.Binding
	Complete key.Binding
	Filter   key.Binding
	Examples key.Binding
	Reset    key.Binding
	Copy     key.Binding

	// General
	Cancel key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMapFromConfig(&config.DefaultConfig().Keys)
}

// KeyMapFromConfig creates a KeyMap from config settings. Empty entries fall
// back to the defaults.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	def := config.DefaultConfig().Keys
	bind := func(value, fallback, desc string) key.Binding {
		if value == "" {
			value = fallback
		}
		return key.NewBinding(
			key.WithKeys(config.ParseKeys(value)...),
			key.WithHelp(value, desc),
		)
	}

	return KeyMap{
		NextSection: bind(cfg.NextSection, def.NextSection, "next section"),
		PrevSection: bind(cfg.PrevSection, def.PrevSection, "previous section"),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to section"),
		),
		Up:       bind(cfg.Up, def.Up, "up"),
		Down:     bind(cfg.Down, def.Down, "down"),
		Left:     bind(cfg.Left, def.Left, "decrease / previous"),
		Right:    bind(cfg.Right, def.Right, "increase / next"),
		Toggle:   bind(cfg.Toggle, def.Toggle, "toggle"),
		Complete: bind(cfg.Complete, def.Complete, "mark section complete"),
		Filter:   bind(cfg.Filter, def.Filter, "filter practices"),
		Examples: bind(cfg.Examples, def.Examples, "switch examples"),
		Reset:    bind(cfg.Reset, def.Reset, "reset spacing"),
		Copy:     bind(cfg.Copy, def.Copy, "copy practice"),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: bind(cfg.Quit, def.Quit, "quit"),
		Help: bind(cfg.Help, def.Help, "help"),
	}
}
