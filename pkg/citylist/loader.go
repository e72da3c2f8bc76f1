package citylist

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Result struct {
	Records []CityRecord
	Err     error
}

// Start runs Load once in the background. The channel yields a single Result
// and is then closed. If ctx ends before the fetch does, the result is
// discarded and the channel is closed empty.
func Start(ctx context.Context, client *http.Client, baseURL string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		start := time.Now()
		records, err := Load(ctx, client, baseURL)
		if ctx.Err() != nil {
			slog.Debug("City load finished after teardown, dropping result", "elapsed", time.Since(start))
			return
		}
		if err != nil {
			slog.Warn("City load failed", "error", err)
		} else {
			slog.Info("City list loaded", "records", len(records), "elapsed", time.Since(start))
		}
		ch <- Result{Records: records, Err: err}
	}()
	return ch
}
