package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const readyInitialInterval = 250 * time.Millisecond

// WaitUntilReady pings the store with exponential backoff until it answers
// or maxWait elapses. It only runs at startup; requests are never retried.
func WaitUntilReady(ctx context.Context, p Pinger, maxWait time.Duration, log zerolog.Logger) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = readyInitialInterval
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = maxWait
	exp.Reset()

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := p.Ping(ctx)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("entry store not ready")
		}
		return err
	}, backoff.WithContext(exp, ctx))
}
