package cmd

import (
	"fmt"

	"github.com/Flapjacck/pbat/internal/config"
	"github.com/Flapjacck/pbat/internal/store"
	"github.com/Flapjacck/pbat/internal/tui"
)

// openStore loads the config and opens the migrated session database.
func openStore() (*config.Config, store.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := store.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrating database: %w", err)
	}
	return cfg, db, nil
}

// runScreen opens the terminal app and runs one screen to completion.
func runScreen(screen func(*tui.App) error) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	app, err := tui.NewApp(cfg, db)
	if err != nil {
		return err
	}
	defer app.Close()
	return screen(app)
}
