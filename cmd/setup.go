package main

import (
	"context"
	"os"

	"github.com/desertthunder/applyx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file from the embedded template when missing, then initializes the database and runs
// migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := r.configPath
	if configPath == "" {
		configPath = "config.toml"
	}

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.writePlain("✓ Config written to %s\n", configPath)
			if config, err := shared.ResolveConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using current settings", "error", err)
			} else {
				r.config = config
			}
		}
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)
	if _, err := r.sessionManager(); err != nil {
		return err
	}

	version := 0
	if r.db != nil {
		v, _, err := shared.SchemaVersion(r.db)
		if err != nil {
			return err
		}
		version = v
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	r.writePlain("✓ Database ready at %s (schema version %d)\n", r.config.Database.Path, version)
	r.writePlainln("Next steps:")
	r.writePlain("1. Check api.base_url in %s points at your backend\n", configPath)
	r.writePlain("2. Run 'applyx profile save --name ... --email ...' or 'applyx tui'\n")
	return nil
}
