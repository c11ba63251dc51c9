package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/homescreen/internal/app"
	"github.com/henri123lemoine/homescreen/internal/config"
	"github.com/henri123lemoine/homescreen/internal/debug"
	"github.com/henri123lemoine/homescreen/internal/lesson"
)

var version = "dev"

var (
	configPath string
	debugFlag  bool
	debugLog   string
	section    string
	save       bool
	initConfig bool
)

var rootCmd = &cobra.Command{
	Use:           "homescreen",
	Short:         "Interactive lesson on designing a mobile home screen",
	Long:          "Walks through visual hierarchy, spacing, navigation patterns and accessibility with live mock screens.",
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	flags.BoolVar(&debugFlag, "debug", false, "write a debug log")
	flags.StringVar(&debugLog, "debug-log", filepath.Join(os.TempDir(), "homescreen-debug.log"), "debug log path")
	flags.StringVar(&section, "section", "", "section to open first (hierarchy, spacing, navigation, accessibility, summary)")
	flags.BoolVar(&save, "save", false, "remember --section as the start section in the config file")
	flags.BoolVar(&initConfig, "init-config", false, "write a commented default config file and exit")
}

func run(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}

	if initConfig {
		if err := config.CreateDefaultConfigFile(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	}

	// Load configuration
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if section != "" {
		id, err := lesson.ParseSectionID(section)
		if err != nil {
			return fmt.Errorf("--section: %w", err)
		}
		cfg.Lesson.StartSection = id.String()
		if save {
			if err := config.SaveStartSection(path, id); err != nil {
				return fmt.Errorf("saving start section: %w", err)
			}
		}
	} else if save {
		return fmt.Errorf("--save needs --section")
	}

	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if debugFlag || cmd.Flags().Changed("debug-log") {
		if err := debug.Enable(debugLog); err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
		defer debug.Close()
		debug.With("starting", "version", version, "config", path, "section", cfg.StartSection())
	}

	content, err := lesson.DefaultContent()
	if err != nil {
		return fmt.Errorf("loading lesson content: %w", err)
	}

	// Create and run the application
	model := app.New(cfg, content)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() {
		debug.With("quit", "progress", m.Progress())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
