// Command popuplist drives the combobox and menu widgets in a terminal.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/announce"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
)

var errNoItems = errors.New("no items given")

func main() {
	if err := newCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          "popuplist",
		Short:        "Pick a value from a popup list in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			logPath, _ := cmd.Flags().GetString("log")
			logLevel, _ := cmd.Flags().GetString("log-level")
			return popuplist.Init(popuplist.Options{
				LogPath:    logPath,
				LogLevel:   logLevel,
				ConfigFile: configFile,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			popuplist.Close()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "TOML or YAML config file")
	rootCmd.PersistentFlags().String("locale", "", "Locale for announcements, overrides the config")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Read items from a file, one per line")
	rootCmd.PersistentFlags().String("label", "", "Accessible label for the widget")
	rootCmd.PersistentFlags().String("device", "", "Also read keys from a Linux input device, e.g. /dev/input/event0")

	rootCmd.AddCommand(newComboboxCmd(), newMenuCmd())
	return rootCmd
}

func newComboboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combobox [items...]",
		Short: "Filter and pick a value",
		Long:  "Filter and pick a value. Items prefixed with \"!\" are shown but cannot be picked.",
		RunE:  ComboboxHandler,
	}
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [items...]",
		Short: "Open a menu and pick an item",
		Long:  "Open a menu and pick an item. Type to jump to an item. Items prefixed with \"!\" are shown but cannot be picked.",
		RunE:  MenuHandler,
	}
}

// ComboboxHandler runs the combobox and prints the picked value.
func ComboboxHandler(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	m := newComboboxModel(s.label, s.entries, s.keymap, s.announcer, s.theme)
	if err := runProgram(m, s.device); err != nil {
		return err
	}

	return s.report(cmd, m.selected)
}

// MenuHandler runs the menu and prints the picked value.
func MenuHandler(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	options := popuplist.MenuOptions{TypeaheadTimeout: s.config.TypeaheadTimeout}
	m := newMenuModel(s.label, s.entries, options, s.keymap, s.announcer, s.theme)
	if err := runProgram(m, s.device); err != nil {
		return err
	}

	return s.report(cmd, m.selected)
}

// session gathers what both subcommands build from flags and config.
type session struct {
	config    popuplist.Config
	label     string
	entries   []entry
	keymap    *keymap.Keymap
	announcer *announce.Announcer
	theme     theme
	device    string
}

func newSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg := popuplist.CurrentConfig()
	if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
		cfg.Locale = locale
	}

	k, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	a, err := cfg.Announcer()
	if err != nil {
		return nil, err
	}

	file, _ := cmd.Flags().GetString("file")
	lines, err := readItems(file, args)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseEntry(line))
	}

	label, _ := cmd.Flags().GetString("label")
	if label == "" {
		label = cmd.Name()
	}

	device, _ := cmd.Flags().GetString("device")

	popuplist.GetLogger().Debug("starting widget", "widget", cmd.Name(), "items", len(entries), "locale", a.Tag().String())

	return &session{
		config:    cfg,
		label:     label,
		entries:   entries,
		keymap:    k,
		announcer: a,
		theme:     newTheme(cfg.AccentColor),
		device:    device,
	}, nil
}

func (s *session) report(cmd *cobra.Command, selected *popuplist.SelectEvent) error {
	if selected == nil {
		popuplist.GetLogger().Debug("nothing selected")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), selected.Value)
	return nil
}

// readItems returns args followed by the non-blank lines of path.
func readItems(path string, args []string) ([]string, error) {
	items := append([]string(nil), args...)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				items = append(items, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(items) == 0 {
		return nil, errNoItems
	}
	return items, nil
}
