package middleware

import (
	"context"
	"log/slog"
	"time"

	"villasunset/internal/app/queries"
)

// QueryMiddleware wraps a query bus with extra behavior.
type QueryMiddleware func(next queries.Bus) queries.Bus

// ChainQueries builds a query bus with middleware applied (outermost first).
func ChainQueries(base queries.Bus, mws ...QueryMiddleware) queries.Bus {
	wrapped := base
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

type queryFunc func(ctx context.Context, query queries.Query) (any, error)

func (f queryFunc) Ask(ctx context.Context, q queries.Query) (any, error) {
	return f(ctx, q)
}

// QueryLogging emits one line per query with its key, duration and outcome.
func QueryLogging(logger *slog.Logger) QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			start := time.Now()
			result, err := next.Ask(ctx, q)
			if logger != nil {
				if err != nil {
					logger.Warn("query failed", "key", q.Key(), "duration", time.Since(start), "error", err)
				} else {
					logger.Debug("query handled", "key", q.Key(), "duration", time.Since(start))
				}
			}
			return result, err
		})
	}
}
