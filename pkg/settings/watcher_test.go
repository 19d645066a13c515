package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func receiveWithTimeout(t *testing.T, ch <-chan []byte, what string) []byte {
	t.Helper()
	select {
	case data, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed while waiting for %s", what)
		}
		return data
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
	return nil
}

func TestChannelWatcher_ForwardsUntilClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := NewChannelWatcher(4)
	changes, err := watcher.Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	watcher.Send([]byte("one"))
	if got := string(receiveWithTimeout(t, changes, "first send")); got != "one" {
		t.Errorf("got %q, want %q", got, "one")
	}

	watcher.Send([]byte("two"))
	if got := string(receiveWithTimeout(t, changes, "second send")); got != "two" {
		t.Errorf("got %q, want %q", got, "two")
	}

	watcher.Close()
	select {
	case _, ok := <-changes:
		if ok {
			t.Error("expected watch channel to close after feed close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestChannelWatcher_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	watcher := NewChannelWatcher(1)
	changes, err := watcher.Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancel()
	select {
	case _, ok := <-changes:
		if ok {
			t.Error("expected no data after cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestFileWatcher_EmitsInitialContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"limit":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := string(receiveWithTimeout(t, changes, "initial contents")); got != `{"limit":1}` {
		t.Errorf("initial emission = %q", got)
	}
}

func TestFileWatcher_EmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"limit":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	receiveWithTimeout(t, changes, "initial contents")

	if err := os.WriteFile(path, []byte(`{"limit":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := string(receiveWithTimeout(t, changes, "write emission")); got != `{"limit":2}` {
		t.Errorf("write emission = %q", got)
	}
}

func TestFileWatcher_MissingFileFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := NewFileWatcher(path).Watch(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
