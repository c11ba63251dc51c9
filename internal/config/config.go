// Package config handles homescreen configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/homescreen/internal/lesson"
)

// Config represents homescreen configuration.
type Config struct {
	Lesson LessonConfig `toml:"lesson"`
	UI     UIConfig     `toml:"ui"`
	Keys   KeysConfig   `toml:"keys"`
}

// LessonConfig contains lesson behaviour settings.
type LessonConfig struct {
	// Section shown when the lesson starts
	StartSection string `toml:"start_section"`

	// Mark the accessibility section complete once every checklist item is checked
	AutoComplete bool `toml:"auto_complete"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show the overall progress bar
	ShowProgress bool `toml:"show_progress"`

	// Render section intros as markdown
	Markdown bool `toml:"markdown"`

	// Show the tip line under each section intro
	ShowTips bool `toml:"show_tips"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	NextSection string `toml:"next_section"`
	PrevSection string `toml:"prev_section"`
	Up          string `toml:"up"`
	Down        string `toml:"down"`
	Left        string `toml:"left"`
	Right       string `toml:"right"`
	Toggle      string `toml:"toggle"`
	Complete    string `toml:"complete"`
	Filter      string `toml:"filter"`
	Examples    string `toml:"examples"`
	Reset       string `toml:"reset"`
	Copy        string `toml:"copy"`
	Help        string `toml:"help"`
	Quit        string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lesson: LessonConfig{
			StartSection: string(lesson.SectionHierarchy),
			AutoComplete: true,
		},
		UI: UIConfig{
			Theme:        "auto",
			ShowProgress: true,
			Markdown:     true,
			ShowTips:     true,
		},
		Keys: KeysConfig{
			NextSection: "tab",
			PrevSection: "shift+tab",
			Up:          "up,k",
			Down:        "down,j",
			Left:        "left,h",
			Right:       "right,l",
			Toggle:      "space,enter",
			Complete:    "c",
			Filter:      "/",
			Examples:    "x",
			Reset:       "r",
			Copy:        "y",
			Help:        "?",
			Quit:        "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/homescreen/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "homescreen", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "homescreen", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "homescreen", "config.toml")
	}
	return filepath.Join(configDir, "homescreen", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for anything unspecified (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// StartSection returns the configured start section, falling back to the
// first section when the value is not a known section.
func (c *Config) StartSection() lesson.SectionID {
	id, err := lesson.ParseSectionID(c.Lesson.StartSection)
	if err != nil {
		return lesson.AllSections[0]
	}
	return id
}

// Save saves configuration to path.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeLocked(path, data)
}

// SaveStartSection records id as the start section in the config file at
// path, keeping every other setting the file already holds.
func SaveStartSection(path string, id lesson.SectionID) error {
	if !id.Valid() {
		return fmt.Errorf("start section %q: %w", id, lesson.ErrInvalidArgument)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		return err
	}
	cfg.Lesson.StartSection = id.String()
	return Save(cfg, path)
}

// CreateDefaultConfigFile creates a default config file with comments at
// path. It refuses to overwrite an existing file.
func CreateDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

// writeLocked writes data under an exclusive lock, atomically via a temp
// file and rename.
func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# homescreen configuration\n\n")

	b.WriteString("[lesson]\n")
	b.WriteString("# Section shown at startup: ")
	names := make([]string, len(lesson.AllSections))
	for i, s := range lesson.AllSections {
		names[i] = string(s)
	}
	b.WriteString(strings.Join(names, ", ") + "\n")
	fmt.Fprintf(&b, "start_section = %q\n", cfg.Lesson.StartSection)
	b.WriteString("# Mark accessibility complete once every checklist item is checked\n")
	fmt.Fprintf(&b, "auto_complete = %v\n\n", cfg.Lesson.AutoComplete)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Show the overall progress bar\n")
	fmt.Fprintf(&b, "show_progress = %v\n", cfg.UI.ShowProgress)
	b.WriteString("# Render section intros as markdown\n")
	fmt.Fprintf(&b, "markdown = %v\n", cfg.UI.Markdown)
	b.WriteString("# Show the tip under each intro\n")
	fmt.Fprintf(&b, "show_tips = %v\n\n", cfg.UI.ShowTips)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# next_section = %q\n", cfg.Keys.NextSection)
	fmt.Fprintf(&b, "# prev_section = %q\n", cfg.Keys.PrevSection)
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# toggle = %q\n", cfg.Keys.Toggle)
	fmt.Fprintf(&b, "# complete = %q\n", cfg.Keys.Complete)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# examples = %q\n", cfg.Keys.Examples)
	fmt.Fprintf(&b, "# reset = %q\n", cfg.Keys.Reset)
	fmt.Fprintf(&b, "# copy = %q\n", cfg.Keys.Copy)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Lesson.StartSection != "" {
		if _, err := lesson.ParseSectionID(c.Lesson.StartSection); err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid value for lesson.start_section: %s", c.Lesson.StartSection))
		}
	}

	// Check theme value
	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	// Check that no key is bound to two actions
	bound := make(map[string]string)
	for _, kb := range c.Keys.bindings() {
		for _, k := range ParseKeys(kb.keys) {
			if other, ok := bound[k]; ok {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both keys.%s and keys.%s", k, other, kb.name))
				continue
			}
			bound[k] = kb.name
		}
	}

	return warnings
}

type keyBinding struct {
	name string
	keys string
}

func (k KeysConfig) bindings() []keyBinding {
	return []keyBinding{
		{"next_section", k.NextSection},
		{"prev_section", k.PrevSection},
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"toggle", k.Toggle},
		{"complete", k.Complete},
		{"filter", k.Filter},
		{"examples", k.Examples},
		{"reset", k.Reset},
		{"copy", k.Copy},
		{"help", k.Help},
		{"quit", k.Quit},
	}
}

// ParseKeys parses a comma-separated list of keys. "space" names the space bar.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
