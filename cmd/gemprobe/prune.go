package main

import (
	"fmt"
	"path/filepath"

	"github.com/metalagman/gemprobe/internal/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func pruneCmd() *cobra.Command {
	var keepLast int
	var keepDays int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune old checks from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			policy := db.RetentionPolicy{KeepLast: keepLast, KeepDays: keepDays}
			if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
				policy = db.RetentionPolicy{
					KeepLast: cfg.Retention.KeepLast,
					KeepDays: cfg.Retention.KeepDays,
				}
			}
			if policy.KeepLast <= 0 && policy.KeepDays <= 0 {
				return fmt.Errorf("set --keep-last or --keep-days (or configure retention in %s)", filepath.Join(".gemprobe", "config.json"))
			}

			res, err := db.NewStore(storeDB).PruneChecks(cmd.Context(), policy, dryRun)
			if err != nil {
				return err
			}
			mode := "deleted"
			if dryRun {
				mode = "would delete"
			}
			log.Info().Msgf("%s %d checks (kept %d)", mode, res.Deleted, res.Kept)
			return nil
		},
	}
	cmd.Flags().IntVar(&keepLast, "keep-last", 0, "keep the newest N checks")
	cmd.Flags().IntVar(&keepDays, "keep-days", 0, "keep checks newer than N days")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be pruned without deleting")
	return cmd
}
