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

package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mchmarny/brewbook/pkg/api"
	"github.com/mchmarny/brewbook/pkg/catalog"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		Aliases:               []string{"ls"},
		EnableShellCompletion: true,
		Usage:                 "List recipes, optionally filtered by category and search text",
		Description: `List the resolved recipes of a dataset.

--category selects one category exactly ("all" or empty selects every recipe).
--query is matched case-insensitively against the name, category, tags,
measurements, steps and common mistakes of each recipe.

Examples:
  brewbook list --dataset recipes.yaml --format table
  brewbook list --dataset https://example.com/recipes.json --category Espresso --query oat`,
		Flags: append(readFlags(),
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Value:   catalog.AllCategories,
				Usage:   "Category to show (all for every category)",
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Free-text search",
			},
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			doc := api.NewRecipeList(c, cmd.String("category"), cmd.String("query"), version)
			slog.Debug("recipes filtered",
				"category", doc.Category,
				"query", doc.Query,
				"count", doc.Count)

			return writeOutput(ctx, cmd, doc)
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Show one recipe with measurements, prep and build steps",
		ArgsUsage:             "ID",
		Description: `Show the fully resolved recipe with the given id. Build steps are grouped
by build order when the recipe defines any.

Example:
  brewbook show americano --dataset recipes.yaml --format table`,
		Flags: append(readFlags(),
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := strings.TrimSpace(cmd.Args().First())
			if id == "" {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, "recipe id is required")
			}
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			st, found := catalog.NewState(c).Open(id)
			if !found {
				return apperrors.NewWithContext(apperrors.ErrCodeNotFound,
					"recipe not found", map[string]any{"id": id})
			}
			r, _ := st.Current()

			return writeOutput(ctx, cmd, api.NewRecipeDetail(r, version))
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "categories",
		EnableShellCompletion: true,
		Usage:                 "List recipe categories with recipe counts",
		Flags: append(readFlags(),
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, api.NewCategoryList(c, version))
		},
	}
}
