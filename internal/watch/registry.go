// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch manages filesystem watch sessions that notify a
// listener whenever a new PDF appears under a watched tree.
package watch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// ErrNotFound reports a Stop call for an unknown watch id.
var ErrNotFound = errors.New("watch session not found")

// EventCreated is the only event type currently emitted.
const EventCreated = "created"

// Event describes one detected PDF creation under a watched folder.
// The JSON field names form the notification contract with consumers.
type Event struct {
	WatchID    string `json:"watchId"`
	FolderPath string `json:"folderPath"`
	EventType  string `json:"eventType"`
	FilePath   string `json:"filePath"`
}

// Registry owns every active watch session, keyed by watch id. The map
// starts empty at process start, gains an entry per Start, loses it on
// Stop, and never expires entries on its own. The mutex is held only
// around map insert and remove, never across watcher setup.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	notify   func(Event)
	log      *slog.Logger
}

type session struct {
	watcher *fsnotify.Watcher
}

// NewRegistry returns an empty registry delivering events through
// notify.
func NewRegistry(notify func(Event), logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[string]*session),
		notify:   notify,
		log:      logger,
	}
}

// Start begins watching dir for new PDF files and returns the session's
// watch id. Recursive sessions also watch existing subdirectories and
// pick up directories created while watching. The session lives until
// Stop is called with its id.
func (r *Registry) Start(dir string, recursive bool) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", dir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return "", fmt.Errorf("creating watcher: %w", err)
	}

	if err := w.Add(dir); err != nil {
		w.Close()
		return "", fmt.Errorf("watching %s: %w", dir, err)
	}
	if recursive {
		// fsnotify watches are not recursive: add the existing subtree.
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || !d.IsDir() || path == dir {
				return nil
			}
			if addErr := w.Add(path); addErr != nil {
				r.log.Warn("watching subdirectory", "path", path, "error", addErr)
			}
			return nil
		})
	}

	id := uuid.NewString()
	s := &session{watcher: w}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	go r.eventLoop(id, dir, recursive, s)

	r.log.Info("watch session started", "watch_id", id, "dir", dir, "recursive", recursive)
	return id, nil
}

// Stop removes the session and drops its underlying watch handle.
func (r *Registry) Stop(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.log.Info("watch session stopped", "watch_id", id)
	return s.watcher.Close()
}

// Active returns the number of live watch sessions.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// eventLoop consumes filesystem events until the watcher is closed.
// Watch errors are logged, never fatal to the session.
func (r *Registry) eventLoop(id, dir string, recursive bool, s *session) {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			if recursive {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if addErr := s.watcher.Add(ev.Name); addErr != nil {
						r.log.Warn("watching new subdirectory", "path", ev.Name, "error", addErr)
					}
					continue
				}
			}
			if strings.EqualFold(filepath.Ext(ev.Name), ".pdf") {
				r.notify(Event{
					WatchID:    id,
					FolderPath: dir,
					EventType:  EventCreated,
					FilePath:   ev.Name,
				})
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			r.log.Error("watch error", "watch_id", id, "error", err)
		}
	}
}
