package report

import (
	"github.com/getsentry/sentry-go"
)

// SentryReportOptions provides optional data for reporting.
type SentryReportOptions struct {
	Tags         map[string]string
	ExtraContext map[string]interface{}
	Level        sentry.Level
}

// ReportError reports the error to Sentry with the given severity level.
// If no level is provided, it defaults to sentry.LevelError.
func ReportError(err error, levels ...sentry.Level) {
	if err == nil {
		return
	}

	level := sentry.LevelError
	if len(levels) > 0 {
		level = levels[0]
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		sentry.CaptureException(err)
	})
}

// ReportErrorWithSentryOptions reports the error with extra tags and context
// attached to the event scope.
func ReportErrorWithSentryOptions(err error, opts SentryReportOptions) {
	if err == nil {
		return
	}

	level := opts.Level
	if level == "" {
		level = sentry.LevelError
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		for k, v := range opts.Tags {
			scope.SetTag(k, v)
		}
		if len(opts.ExtraContext) > 0 {
			scope.SetContext("extra", opts.ExtraContext)
		}
		sentry.CaptureException(err)
	})
}
