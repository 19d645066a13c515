// Package settings feeds externally-owned configuration into the broadcast
// layer. A Source watches a byte source (a file, or a caller-owned
// channel), decodes values of a typed settings struct, validates them, and
// publishes accepted values through a [core.Observable]. Consumers
// subscribe to the observable like to any other broadcaster; invalid input
// never replaces the last good value.
//
//	src := settings.NewSource[AppConfig](
//	    settings.NewFileWatcher("app.yaml"),
//	    settings.YAMLCodec{},
//	    defaults,
//	)
//	if err := src.Start(ctx); err != nil { ... }
//	defer src.Stop()
//
//	core.UseObservable(s, src.Observable())
//
// Lifecycle signals and failures are emitted through capitan for
// observability; hook them with capitan.Hook.
package settings
