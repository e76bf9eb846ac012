package ports

import "context"

// BackgroundProcessor is a long running loop. Start blocks until ctx is
// cancelled or the processor can no longer make progress.
type BackgroundProcessor interface {
	Start(ctx context.Context) error
}
