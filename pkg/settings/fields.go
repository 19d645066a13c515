package settings

import "github.com/zoobzio/capitan"

// Field keys for Source events.
var (
	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyContentType is the MIME type the source's codec decodes.
	KeyContentType = capitan.NewStringKey("content_type")

	// KeyWatcherType is the type name of the watcher implementation.
	KeyWatcherType = capitan.NewStringKey("watcher_type")
)
