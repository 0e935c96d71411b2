// Package cli drives the settings and localization use cases from a shell.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"sitesettings/internal/domain/entities"
	"sitesettings/internal/ports/input"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

const usage = `usage: sitectl <command> [arguments]

commands:
  show                          print the current settings
  set [-language L] [-theme T]  update the settings
  t KEY...                      resolve translation keys
  tf KEY [NAME=VALUE...]        render a templated message
  languages                     list supported languages
  keys                          list known message keys`

// Handler runs sitectl commands against the use cases.
type Handler struct {
	settings     input.SettingsUseCase
	localization input.LocalizationUseCase
	out          io.Writer
	errOut       io.Writer
}

// NewHandler creates a Handler writing results to out and diagnostics to errOut.
func NewHandler(settings input.SettingsUseCase, localization input.LocalizationUseCase, out, errOut io.Writer) *Handler {
	return &Handler{
		settings:     settings,
		localization: localization,
		out:          out,
		errOut:       errOut,
	}
}

// Run executes the command named by args[0].
func (h *Handler) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(h.errOut, usage)
		return ErrUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "show":
		return h.printSettings(h.settings.Settings())
	case "set":
		return h.handleSet(ctx, rest)
	case "t":
		return h.handleT(rest)
	case "tf":
		return h.handleTf(rest)
	case "languages":
		return h.handleLanguages()
	case "keys":
		for _, k := range entities.MessageKeys() {
			fmt.Fprintln(h.out, k)
		}
		return nil
	case "help", "-h", "--help":
		fmt.Fprintln(h.out, usage)
		return nil
	default:
		fmt.Fprintln(h.errOut, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (h *Handler) handleSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(h.errOut)
	lang := fs.String("language", "", "language to switch to")
	theme := fs.String("theme", "", "theme to switch to (light, dark)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var partial entities.PartialSettings
	if *lang != "" {
		l := entities.Language(strings.ToLower(*lang))
		partial.Language = &l
	}
	if *theme != "" {
		t := entities.Theme(strings.ToLower(*theme))
		partial.Theme = &t
	}

	s, err := h.settings.UpdateSettings(ctx, partial)
	if err != nil {
		return err
	}
	return h.printSettings(s)
}

func (h *Handler) handleT(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: t needs at least one key", ErrUsage)
	}
	for _, k := range keys {
		fmt.Fprintln(h.out, h.localization.T(k))
	}
	return nil
}

func (h *Handler) handleTf(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: tf needs a key", ErrUsage)
	}
	data := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("%w: expected NAME=VALUE, got %q", ErrUsage, pair)
		}
		data[name] = value
	}
	fmt.Fprintln(h.out, h.localization.Tf(args[0], data))
	return nil
}

func (h *Handler) handleLanguages() error {
	current := h.localization.CurrentLanguage()
	for _, l := range entities.Languages() {
		marker := " "
		if l == current {
			marker = "*"
		}
		fmt.Fprintf(h.out, "%s %s\t%s\t%s\n", marker, l, l.Direction(), l.Tag())
	}
	return nil
}

func (h *Handler) printSettings(s entities.Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	fmt.Fprintln(h.out, string(data))
	return nil
}
