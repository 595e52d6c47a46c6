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

	"github.com/mchmarny/brewbook/pkg/api"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/mchmarny/brewbook/pkg/oci"
	"github.com/mchmarny/brewbook/pkg/serializer"
	"github.com/urfave/cli/v3"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Publish a local dataset file to an OCI registry",
		Description: `Validate a local dataset file and push it to an OCI registry as a
single-layer artifact. The published dataset can then be loaded with
--dataset oci://registry/repository:tag.

Example:
  brewbook publish --dataset recipes.yaml --target oci://ghcr.io/acme/recipes:v1

Registry credentials are read from the Docker credential store.`,
		Flags: []cli.Flag{
			datasetFlag(),
			&cli.StringFlag{
				Name:     "target",
				Usage:    "Destination OCI reference (oci://registry/repository[:tag])",
				Required: true,
			},
			plainHTTPFlag(),
			insecureTLSFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			path, err := datasetLocation(cmd)
			if err != nil {
				return err
			}
			if !serializer.IsLocalFile(path) {
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"only local dataset files can be published", map[string]any{"dataset": path})
			}

			ref, err := oci.ParseReference(cmd.String("target"))
			if err != nil {
				return err
			}

			// fail before pushing anything that cannot be loaded back
			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			res, err := oci.Push(ctx, oci.PushOptions{
				RegistryOptions: registryOptions(cmd),
				Path:            path,
				Reference:       ref,
				Annotations:     oci.DefaultAnnotations(version, c.LastUpdated),
			})
			if err != nil {
				return err
			}

			slog.Info("dataset published",
				"reference", res.Reference,
				"digest", res.Digest,
				"recipes", len(c.Recipes))

			return writeOutput(ctx, cmd, api.NewPublishResult(res, len(c.Recipes), version))
		},
	}
}
