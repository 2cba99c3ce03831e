package cli

import (
	"log"

	"github.com/spf13/cobra"

	"alfredoptarigan/ai-interviewer/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())

		db, err := config.InitDatabase(cfg)
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err == nil {
			defer sqlDB.Close()
		}

		log.Println("✅ Schema is up to date")
		return nil
	},
}
