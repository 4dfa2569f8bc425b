// Package logger provides a small factory around Go's slog package with
// functional options for format, level, output, and default attributes.
//
// It exists to keep logger construction uniform across the uikit packages:
// a single New call configured by Option functions returns a *slog.Logger
// ready to be handed to anything accepting one, such as
// validation.WithLogger or viewstate.WithLogger.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "signup-form")),
//	)
package logger
