package settings

import "github.com/zoobzio/capitan"

// Source lifecycle signals.
var (
	// SourceStarted is emitted when a Source begins watching.
	SourceStarted = capitan.NewSignal(
		"relay.settings.source.started",
		"Settings source watching started",
	)

	// SourceStopped is emitted when a Source stops watching.
	SourceStopped = capitan.NewSignal(
		"relay.settings.source.stopped",
		"Settings source watching stopped",
	)
)

// Change processing signals.
var (
	// SourceChangeReceived is emitted when raw data is received from the watcher.
	SourceChangeReceived = capitan.NewSignal(
		"relay.settings.source.change.received",
		"Raw change received from watcher",
	)

	// SourceDecodeFailed is emitted when the codec cannot decode the data.
	SourceDecodeFailed = capitan.NewSignal(
		"relay.settings.source.decode.failed",
		"Settings decode failed",
	)

	// SourceValidationFailed is emitted when a decoded value fails validation.
	SourceValidationFailed = capitan.NewSignal(
		"relay.settings.source.validation.failed",
		"Settings validation failed",
	)

	// SourceApplied is emitted when a value is accepted and broadcast.
	SourceApplied = capitan.NewSignal(
		"relay.settings.source.applied",
		"Settings applied and broadcast",
	)
)
