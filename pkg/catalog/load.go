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

package catalog

import (
	"context"
	"log/slog"

	"github.com/mchmarny/brewbook/pkg/defaults"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/mchmarny/brewbook/pkg/serializer"
)

// Load fetches the dataset at location and resolves it. Any failure to
// fetch or decode the document is returned as an UNAVAILABLE error; a
// catalog is never built from a partial document.
func Load(ctx context.Context, location string, opts ...serializer.SourceOption) (*Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.DatasetLoadTimeout)
	defer cancel()

	ds, err := serializer.FromSource[Dataset](ctx, location, opts...)
	if err != nil {
		loadFailures.Inc()
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
			"failed to load recipe dataset", err, map[string]any{"location": location})
	}

	c := Reload(ds)
	slog.Info("recipe dataset loaded",
		"location", location,
		"recipes", len(c.Recipes),
		"categories", len(c.Categories),
		"lastUpdated", c.LastUpdated)
	return c, nil
}
