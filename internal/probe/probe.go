// Package probe implements the connectivity check against the Gemini API.
package probe

import (
	"context"
	"time"

	"github.com/metalagman/gemprobe/internal/gemini"
	"github.com/rs/zerolog/log"
)

// Options configure a single connectivity check.
type Options struct {
	APIKey  string
	Model   string
	Prompt  string
	Timeout time.Duration

	// New overrides generator construction, for tests.
	New func(ctx context.Context) (gemini.Generator, error)
}

// Result is the outcome of one check.
type Result struct {
	OK        bool
	Model     string
	Prompt    string
	Response  string
	Err       string
	StartedAt time.Time
	Elapsed   time.Duration
}

// Run performs one round trip to the text-generation service. Client
// construction and request errors are absorbed into the result; Run never
// returns an error, so the caller always terminates normally.
func Run(ctx context.Context, opts Options) Result {
	start := time.Now()
	res := Result{
		Model:     opts.Model,
		Prompt:    opts.Prompt,
		StartedAt: start.UTC(),
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	newGenerator := opts.New
	if newGenerator == nil {
		newGenerator = func(ctx context.Context) (gemini.Generator, error) {
			return gemini.NewClient(ctx, opts.APIKey, opts.Model)
		}
	}

	log.Debug().Str("model", opts.Model).Msg("sending generate request")
	text, err := func() (string, error) {
		generator, err := newGenerator(ctx)
		if err != nil {
			return "", err
		}
		return generator.Generate(ctx, opts.Prompt)
	}()
	res.Elapsed = time.Since(start)

	if err != nil {
		log.Debug().Err(err).Dur("elapsed", res.Elapsed).Msg("check failed")
		res.Err = err.Error()
		return res
	}

	log.Debug().Dur("elapsed", res.Elapsed).Int("response_chars", len(text)).Msg("check succeeded")
	res.OK = true
	res.Response = text
	return res
}
