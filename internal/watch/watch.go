// Package watch reports edits to the network's data files so the CLI can
// reload the graph and re-render a report.
package watch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoFiles indicates a Watcher was created without any file to watch.
var ErrNoFiles = errors.New("watch: no files to watch")

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // file written or created
	ChangeRemoved                    // file deleted or renamed away
)

// String names the kind for log lines.
func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "modified"
}

// Change is a debounced edit of one watched file.
type Change struct {
	Kind ChangeKind
	File string // base name, as passed to NewWatcher
}

// Watcher monitors named files inside one directory. Editors that save by
// rename are handled because the directory, not the files, is watched.
type Watcher struct {
	Dir     string
	Changes <-chan Change // closed by Stop

	changes  chan Change
	done     chan struct{}
	files    map[string]bool
	debounce time.Duration
	log      *slog.Logger
	watcher  *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before its change is
// emitted. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger routes watch errors to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWatcher creates a watcher for the named files (base names) in dir.
// Empty names are ignored.
func NewWatcher(dir string, files []string, opts ...Option) (*Watcher, error) {
	set := make(map[string]bool, len(files))
	for _, f := range files {
		if f != "" {
			set[filepath.Base(f)] = true
		}
	}
	if len(set) == 0 {
		return nil, ErrNoFiles
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		files:    set,
		debounce: 100 * time.Millisecond,
		log:      slog.New(slog.DiscardHandler),
		watcher:  fw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			base := filepath.Base(event.Name)
			if !w.files[base] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[base] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "dir", w.Dir, "err", err)
		}
	}
}

// emit reports the file's state at emission time, so a burst that ends with
// the file present is a modification.
func (w *Watcher) emit(file string) {
	kind := ChangeModified
	if _, err := os.Stat(filepath.Join(w.Dir, file)); errors.Is(err, os.ErrNotExist) {
		kind = ChangeRemoved
	}
	w.changes <- Change{Kind: kind, File: file}
}
