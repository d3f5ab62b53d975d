// Package watcher monitors the playbook directory and notifies the TUI to
// reload. Only the directory itself is watched: playbooks live directly in
// it, so edits, creations, renames and deletions of any playbook all show
// up as events on that one watch.
package watcher

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects a relevant change.
type Event struct{}

// Watch monitors root and sends Event values on the returned channel.
// Rapid bursts (editors often write, rename and chmod in one save) are
// coalesced via the debounce window.
//
// Call the returned stop function to tear down the watcher.
func Watch(root string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("watcher: %w", err)
	}
	if err := w.Add(root); err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("watcher: watch %s: %w", root, err)
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !relevant(ev) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			_ = w.Close()
		})
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// relevant reports whether ev can change what the lists show.
func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return !shouldIgnore(ev.Name)
}

// shouldIgnore returns true for paths that never appear in the lists.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	// Hidden files are not listed, and editors keep their state in them
	// (.deploy.txt.swp, .#deploy.txt).
	if strings.HasPrefix(base, ".") {
		return true
	}

	// Editor backups and temp files.
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") || strings.HasSuffix(base, ".tmp") {
		return true
	}

	// vim probes directory writability with a file named 4913.
	if base == "4913" {
		return true
	}

	return false
}
