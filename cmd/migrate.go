package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meinhoongagan/edumate/config"
	"github.com/meinhoongagan/edumate/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		if cfg.DBDriver != config.DriverPostgres {
			return fmt.Errorf("migrate needs DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.DBDriver)
		}
		conn, err := db.Init(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		return db.Migrate(conn)
	},
}
