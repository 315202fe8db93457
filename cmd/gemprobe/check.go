package main

import (
	"context"
	"os"
	"time"

	"github.com/metalagman/gemprobe/internal/db"
	"github.com/metalagman/gemprobe/internal/probe"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var model string
	var prompt string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one connectivity check against the Gemini API",
		Long: `Check resolves the API key from the environment, sends one fixed
prompt to the configured model, and prints the outcome. The command exits 0
whether or not the remote call succeeded; a failed call is reported on
stdout, not as a process failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if model != "" {
				cfg.Model = model
			}
			if prompt != "" {
				cfg.Prompt = prompt
			}

			apiKey := os.Getenv(cfg.APIKeyEnv)
			log.Debug().
				Str("model", cfg.Model).
				Str("api_key_env", cfg.APIKeyEnv).
				Bool("api_key_set", apiKey != "").
				Msg("starting check")

			result := probe.Run(cmd.Context(), probe.Options{
				APIKey:  apiKey,
				Model:   cfg.Model,
				Prompt:  cfg.Prompt,
				Timeout: cfg.Timeout,
			})
			result.Report(os.Stdout)

			recordCheck(cmd.Context(), result)
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "override the configured model")
	cmd.Flags().StringVar(&prompt, "prompt", "", "override the configured prompt")
	return cmd
}

// recordCheck appends the outcome to the history database. History is best
// effort: a broken database must not change the check's exit status.
func recordCheck(ctx context.Context, result probe.Result) {
	storeDB, closeFn, err := openDB()
	if err != nil {
		log.Warn().Err(err).Msg("check history unavailable")
		return
	}
	defer closeFn()

	status := db.CheckStatusFailed
	if result.OK {
		status = db.CheckStatusOK
	}
	rec := db.CheckRecord{
		CreatedAt:  result.StartedAt.Format(time.RFC3339),
		Status:     status,
		Model:      result.Model,
		Prompt:     result.Prompt,
		Response:   result.Response,
		Error:      result.Err,
		WallTimeMS: result.Elapsed.Milliseconds(),
	}
	if _, err := db.NewStore(storeDB).RecordCheck(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("record check")
	}
}
