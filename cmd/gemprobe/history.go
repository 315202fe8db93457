package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metalagman/gemprobe/internal/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded connectivity checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, closeFn, err := openDB()
			if err != nil {
				return err
			}
			defer closeFn()

			checks, err := db.NewStore(storeDB).ListChecks(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(checks) == 0 {
				log.Info().Msg("no checks recorded")
				return nil
			}
			for _, check := range checks {
				detail := check.Response
				if check.Status != db.CheckStatusOK {
					detail = check.Error
				}
				_, _ = io.WriteString(os.Stdout, fmt.Sprintf("%d\t%s\t%s\t%s\t%dms\t%s\n",
					check.ID, check.CreatedAt, check.Status, check.Model, check.WallTimeMS, firstLine(detail)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of checks to list")
	return cmd
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
