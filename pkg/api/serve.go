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
	"log/slog"
	"os"
	"strconv"

	"github.com/mchmarny/brewbook/pkg/catalog"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/mchmarny/brewbook/pkg/logging"
	"github.com/mchmarny/brewbook/pkg/serializer"
	"github.com/mchmarny/brewbook/pkg/server"
)

const (
	name           = "brewbookd"
	versionDefault = "dev"

	// EnvDataset names the dataset location when no flag is given.
	EnvDataset = "BREWBOOK_DATASET"
	// EnvWatch enables reloading on dataset file changes.
	EnvWatch = "BREWBOOK_WATCH"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/mchmarny/brewbook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config describes one run of the catalog API.
type Config struct {
	// Dataset is the dataset location (file, URL, cm:// or oci://).
	Dataset string
	// Watch reloads the catalog when a local dataset file changes.
	Watch bool
	// Version is stamped on responses and reported by the root handler.
	Version string
	// SourceOptions are passed to the dataset loader.
	SourceOptions []serializer.SourceOption
	// Server overrides the HTTP server configuration. Nil uses server.NewConfig.
	Server *server.Config
}

// Serve is the brewbookd entry point. It reads its configuration from the
// environment and blocks until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	watch, _ := strconv.ParseBool(os.Getenv(EnvWatch))

	if err := Run(context.Background(), Config{
		Dataset: os.Getenv(EnvDataset),
		Watch:   watch,
		Version: version,
	}); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Run loads the dataset and serves it until ctx is cancelled or the
// process is signalled. The server reports ready only after the first
// successful load. Without Watch an initial load failure is fatal; with
// Watch the server stays up, not ready, until the file is fixed.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Dataset == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			"dataset location is required (set "+EnvDataset+")")
	}

	scfg := cfg.Server
	if scfg == nil {
		scfg = server.NewConfig()
	}
	scfg.Name = name
	if cfg.Version != "" {
		scfg.Version = cfg.Version
	}

	var s *server.Server
	svc := NewService(cfg.Dataset,
		WithServiceVersion(cfg.Version),
		WithCacheMaxAge(scfg.CacheMaxAge),
		WithSourceOptions(cfg.SourceOptions...),
		WithOnLoad(func(*catalog.Catalog) {
			s.SetReady(true)
		}),
	)

	s = server.New(
		server.WithConfig(scfg),
		server.WithHandler(svc.Handlers()),
		server.WithReadinessGate(),
	)

	tasks := []func(context.Context) error{
		func(ctx context.Context) error {
			if err := svc.Load(ctx); err != nil {
				if cfg.Watch {
					slog.Error("initial dataset load failed, waiting for changes", "error", err)
					return nil
				}
				return err
			}
			return nil
		},
	}

	if cfg.Watch {
		w, err := NewWatcher(svc, 0)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "cannot watch dataset", err)
		}
		tasks = append(tasks, w.Run)
	}

	return s.Run(ctx, tasks...)
}
