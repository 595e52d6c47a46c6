// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mchmarny/brewbook/pkg/defaults"
	"github.com/mchmarny/brewbook/pkg/serializer"
)

// Watcher reloads a Service when its local dataset file changes.
type Watcher struct {
	service  *Service
	path     string
	debounce time.Duration
}

// NewWatcher creates a Watcher for the service's dataset. Only local files
// can be watched. A non-positive debounce uses the default.
func NewWatcher(svc *Service, debounce time.Duration) (*Watcher, error) {
	if !serializer.IsLocalFile(svc.Location()) {
		return nil, fmt.Errorf("cannot watch %q: not a local file", svc.Location())
	}

	path, err := filepath.Abs(svc.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", svc.Location(), err)
	}

	if debounce <= 0 {
		debounce = defaults.DatasetWatchDebounce
	}

	return &Watcher{
		service:  svc,
		path:     filepath.Clean(path),
		debounce: debounce,
	}, nil
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that save through rename are still picked up. Bursts of events
// are coalesced into a single reload. A failed reload keeps the current
// catalog.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	slog.Info("watching dataset", "path", w.path, "debounce", w.debounce.String())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("dataset changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case werr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("dataset watch error", "error", werr)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload(ctx context.Context) {
	if err := w.service.Load(ctx); err != nil {
		datasetReloads.WithLabelValues("error").Inc()
		slog.Warn("dataset reload failed, keeping current catalog",
			"path", w.path, "error", err)
		return
	}
	datasetReloads.WithLabelValues("ok").Inc()
}
