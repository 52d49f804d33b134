package memmap

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// AwaitReady polls the handle's readiness flag at a fixed interval until it
// reports ready or the timeout elapses. On timeout it logs and returns
// ErrMapNotReady; callers give up rather than retry indefinitely, and the
// map panel simply stays in its loading state.
func AwaitReady(ctx context.Context, h domain.MapHandle, poll, timeout time.Duration) error {
	if h.Ready() {
		return nil
	}
	t := time.NewTicker(poll)
	defer t.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			log.Warn().Dur("timeout", timeout).Msg("map engine never became ready; giving up")
			return domain.ErrMapNotReady
		case <-t.C:
			if h.Ready() {
				return nil
			}
		}
	}
}
