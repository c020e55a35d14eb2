package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akyairhashvil/morning-stretch/internal/arc"
	"github.com/akyairhashvil/morning-stretch/internal/audio"
	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/akyairhashvil/morning-stretch/internal/database"
	"github.com/akyairhashvil/morning-stretch/internal/tui"
	"github.com/akyairhashvil/morning-stretch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const themeSettingKey = "theme"

func runRoutine(ctx context.Context, opts *options) error {
	e, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	theme, err := resolveTheme(ctx, e.db, opts.theme, e.settings.Theme, e.log)
	if err != nil {
		return err
	}
	geo, err := arc.NewGeometry(e.settings.Ring.Size, e.settings.Ring.Stroke)
	if err != nil {
		return err
	}
	var out audio.Output
	if !e.settings.Sounds.Muted {
		if out, err = audio.NewSpeaker(); err != nil {
			e.log.Warn("speaker unavailable, falling back", "err", err)
			out = nil
		}
	}
	bell := term.IsTerminal(int(os.Stderr.Fd()))
	model := tui.NewMainModel(ctx, tui.Options{
		Repo:     e.db,
		Catalog:  e.catalog,
		Cues:     newCues(e.settings.Sounds, out, os.Stderr, bell, e.log),
		Geometry: geo,
		LeadIn:   e.settings.LeadIn,
		Theme:    tui.ThemeByName(theme),
		Logger:   util.Logger("tui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run routine: %w", err)
	}
	return nil
}

// newCues picks a player per cue. A configured file goes to Command when one
// is set. Otherwise the cue is decoded once and played on out, falling back to
// the terminal bell when out is nil or the file cannot be decoded.
func newCues(s config.SoundSettings, out audio.Output, bellOut io.Writer, bell bool, log *slog.Logger) *audio.Registry {
	if log == nil {
		log = slog.Default()
	}
	configured := audio.Assets{audio.CueStart: s.Start, audio.CueWarning: s.Warning}
	assets := audio.Assets{}
	for cue, path := range audio.DefaultAssets {
		if p := configured[cue]; p != "" {
			path = p
		}
		assets[cue] = path
	}
	fallback := func() audio.Player {
		if bell {
			return audio.BellPlayer{W: bellOut}
		}
		return audio.NopPlayer{}
	}
	return audio.NewRegistry(assets, func(cue audio.Cue, path string) audio.Player {
		if s.Muted {
			return audio.NopPlayer{}
		}
		if s.Command != "" && configured[cue] != "" {
			return audio.NewCommandPlayer(s.Command, path)
		}
		if out == nil {
			return fallback()
		}
		buf, err := audio.LoadBuffer(path)
		if err != nil {
			log.Warn("load cue", "cue", cue, "path", path, "err", err)
			return fallback()
		}
		return audio.NewBufferPlayer(buf, out)
	}, log)
}

// resolveTheme prefers the flag, then the remembered choice, then settings.
// A theme given on the command line is remembered.
func resolveTheme(ctx context.Context, prefs database.SettingsRepository, flag, fallback string, log *slog.Logger) (string, error) {
	if flag != "" {
		if _, ok := tui.Themes[flag]; !ok {
			return "", fmt.Errorf("unknown theme %q", flag)
		}
		if err := prefs.SetSetting(ctx, themeSettingKey, flag); err != nil {
			log.Warn("remember theme", "theme", flag, "err", err)
		}
		return flag, nil
	}
	if v, ok := prefs.GetSetting(ctx, themeSettingKey); ok {
		if _, known := tui.Themes[v]; known {
			return v, nil
		}
	}
	return fallback, nil
}
