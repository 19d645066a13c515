package settings

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/relay/pkg/core"
	relayerrors "github.com/go-drift/relay/pkg/errors"
)

// ErrAlreadyStarted is returned when Start is called on a running Source.
var ErrAlreadyStarted = stderrors.New("settings: source already started")

// Validator is implemented by settings types that constrain their own
// values. A decoded value that fails validation is rejected and the last
// good value is retained.
type Validator interface {
	Validate() error
}

// Source watches a byte source, decodes values of type T, and broadcasts
// accepted values through an Observable. It owns one goroutine between
// Start and Stop; all fan-out happens through the observable's listener
// registry.
type Source[T any] struct {
	watcher Watcher
	codec   Codec
	obs     *core.Observable[T]

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSource creates a source broadcasting initial until the watcher
// delivers an accepted value.
func NewSource[T any](watcher Watcher, codec Codec, initial T) *Source[T] {
	return &Source[T]{
		watcher: watcher,
		codec:   codec,
		obs:     core.NewObservable(initial),
	}
}

// Observable returns the broadcast side of the source. Subscribe to it
// directly or through core.UseObservable.
func (s *Source[T]) Observable() *core.Observable[T] {
	return s.obs
}

// Value returns the last accepted value.
func (s *Source[T]) Value() T {
	return s.obs.Value()
}

// Start begins watching. It returns once the watcher is established; the
// first emission (the current contents) is processed asynchronously.
func (s *Source[T]) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	watchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	changes, err := s.watcher.Watch(watchCtx)
	if err != nil {
		cancel()
		close(done)
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	capitan.Emit(watchCtx, SourceStarted,
		KeyWatcherType.Field(fmt.Sprintf("%T", s.watcher)),
		KeyContentType.Field(s.codec.ContentType()),
	)

	go func() {
		defer close(done)
		for {
			select {
			case <-watchCtx.Done():
				capitan.Emit(context.WithoutCancel(watchCtx), SourceStopped)
				return
			case raw, ok := <-changes:
				if !ok {
					capitan.Emit(context.WithoutCancel(watchCtx), SourceStopped)
					return
				}
				s.process(watchCtx, raw)
			}
		}
	}()
	return nil
}

// Stop cancels watching and waits for the worker goroutine to exit.
// Safe to call more than once.
func (s *Source[T]) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Dispose implements core.Disposable so a Source can be managed with
// core.UseController.
func (s *Source[T]) Dispose() {
	s.Stop()
}

// process decodes, validates, and broadcasts one emission. Failures leave
// the last good value in place.
func (s *Source[T]) process(ctx context.Context, raw []byte) {
	capitan.Emit(ctx, SourceChangeReceived)

	var next T
	if err := s.codec.Unmarshal(raw, &next); err != nil {
		capitan.Emit(ctx, SourceDecodeFailed, KeyError.Field(err.Error()))
		relayerrors.Report(&relayerrors.RelayError{
			Op:   "settings.Source.process",
			Kind: relayerrors.KindSettings,
			Err:  err,
		})
		return
	}

	if v, ok := any(next).(Validator); ok {
		if err := v.Validate(); err != nil {
			capitan.Emit(ctx, SourceValidationFailed, KeyError.Field(err.Error()))
			relayerrors.Report(&relayerrors.RelayError{
				Op:   "settings.Source.process",
				Kind: relayerrors.KindSettings,
				Err:  err,
			})
			return
		}
	}

	s.obs.Set(next)
	capitan.Emit(ctx, SourceApplied)
}
