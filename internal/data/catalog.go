// Package data loads the static JSON data files that back every page, and
// hosts the normalize pipeline that keeps those files tidy.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog is an explicit cache over a directory of JSON data files. Each
// file is read and decoded at most once until invalidated; concurrent
// first loads of the same file are collapsed into a single read.
type Catalog struct {
	dir   string
	log   *zap.Logger
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]any
}

// NewCatalog creates a catalog over dir
func NewCatalog(dir string, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		dir:   dir,
		log:   log,
		cache: make(map[string]any),
	}
}

// Dir returns the data directory
func (c *Catalog) Dir() string {
	return c.dir
}

// Load fetches and decodes one data file as a []T, serving repeated calls
// from the cache.
func Load[T any](ctx context.Context, c *Catalog, name string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	cached, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		if records, ok := cached.([]T); ok {
			return records, nil
		}
	}

	result, err, _ := c.group.Do(name, func() (any, error) {
		raw, err := os.ReadFile(filepath.Join(c.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.mu.Lock()
		c.cache[name] = records
		c.mu.Unlock()
		c.log.Debug("loaded data file", zap.String("file", name), zap.Int("entries", len(records)))
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

// Invalidate drops one file from the cache
func (c *Catalog) Invalidate(name string) {
	c.mu.Lock()
	delete(c.cache, name)
	c.mu.Unlock()
}

// Clear drops the whole cache
func (c *Catalog) Clear() {
	c.mu.Lock()
	c.cache = make(map[string]any)
	c.mu.Unlock()
}

// Watch invalidates cached files as they change on disk, until ctx is
// done. It returns once the watcher is installed.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", c.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				name := filepath.Base(event.Name)
				if filepath.Ext(name) != ".json" {
					continue
				}
				c.Invalidate(name)
				c.log.Info("data file changed, cache invalidated",
					zap.String("file", name), zap.String("op", event.Op.String()))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.log.Warn("data watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}
