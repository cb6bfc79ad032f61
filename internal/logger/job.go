package logger

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
)

type jobKey struct{}

// JobInfo identifies one run of a periodic job for log correlation
type JobInfo struct {
	Name  string
	Cycle uint64
}

// WithJob returns a context carrying the job info and a sentry hub tagged with it.
// Loggers obtained through FromContext pick up both.
func WithJob(ctx context.Context, info JobInfo) context.Context {
	ctx = context.WithValue(ctx, jobKey{}, info)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("job", info.Name)
		scope.SetTag("cycle", strconv.FormatUint(info.Cycle, 10))
	})

	return sentry.SetHubOnContext(ctx, hub)
}

// JobFromContext extracts job info set by WithJob
func JobFromContext(ctx context.Context) (JobInfo, bool) {
	if ctx == nil {
		return JobInfo{}, false
	}
	info, ok := ctx.Value(jobKey{}).(JobInfo)
	return info, ok
}
