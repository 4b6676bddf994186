package app

import (
	"context"
	"fmt"

	"github.com/mwrend/lotview/internal/config"
	"github.com/mwrend/lotview/internal/dataset"
	"github.com/mwrend/lotview/internal/prefs"
	"github.com/mwrend/lotview/internal/state"
	"github.com/mwrend/lotview/internal/ui"
)

// Options configure the lotview application.
type Options struct {
	ConfigPath string
	DataPath   string // overrides config when set
	PrefsPath  string // empty uses default ~/.config/lotview/prefs.toml
	NoWatch    bool
}

// Run boots the lotview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}
	if cfg.DataPath == "" {
		return fmt.Errorf("no dataset: pass a CSV path or set data_path in the config")
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}

	// Initial load is fatal on failure; later reload failures keep the
	// previous dataset and surface in the header instead.
	ds, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	store.Update(ds, nil)

	if cfg.Watch && !opts.NoWatch {
		if err := StartWatcher(ctx, store, cfg.DataPath); err != nil {
			return fmt.Errorf("watch dataset: %w", err)
		}
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
