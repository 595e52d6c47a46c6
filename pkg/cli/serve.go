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

	"github.com/mchmarny/brewbook/pkg/api"
	"github.com/mchmarny/brewbook/pkg/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the catalog over HTTP",
		Description: `Run the catalog HTTP API:

  GET /v1/recipes?category=&q=
  GET /v1/recipes/{id}
  GET /v1/categories
  GET /health, /ready, /metrics

The server reports ready once the dataset is loaded. With --watch a local
dataset file is reloaded whenever it changes.`,
		Flags: append(readFlags(),
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Reload the dataset when the local file changes",
				Sources: cli.EnvVars(api.EnvWatch),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
				Value:   8080,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind to (default: all interfaces)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc, err := datasetLocation(cmd)
			if err != nil {
				return err
			}

			cfg := server.NewConfig()
			cfg.Port = int(cmd.Int("port"))
			cfg.Address = cmd.String("address")

			return api.Run(ctx, api.Config{
				Dataset:       loc,
				Watch:         cmd.Bool("watch"),
				Version:       version,
				SourceOptions: sourceOptions(cmd),
				Server:        cfg,
			})
		},
	}
}
