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
	"fmt"
	"log/slog"
	"strings"

	"github.com/mchmarny/brewbook/pkg/api"
	"github.com/mchmarny/brewbook/pkg/catalog"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
	"github.com/mchmarny/brewbook/pkg/oci"
	"github.com/mchmarny/brewbook/pkg/serializer"
	"github.com/urfave/cli/v3"
)

func datasetFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"d"},
		Usage: `Dataset location. Supports file paths, HTTP/HTTPS URLs, ConfigMap URIs
	(cm://namespace/name), OCI references (oci://registry/repo:tag) and - for stdin.`,
		Sources: cli.EnvVars(api.EnvDataset),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default: stdout",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func plainHTTPFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "plain-http",
		Usage: "Use HTTP instead of HTTPS for OCI registry (for local development)",
	}
}

func insecureTLSFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "insecure-tls",
		Usage: "Skip TLS certificate verification for HTTPS datasets and OCI registries",
	}
}

// readFlags are shared by every command that loads a dataset.
func readFlags() []cli.Flag {
	return []cli.Flag{datasetFlag(), plainHTTPFlag(), insecureTLSFlag()}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", cmd.String("format")),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return f, nil
}

func registryOptions(cmd *cli.Command) oci.RegistryOptions {
	return oci.RegistryOptions{
		PlainHTTP:   cmd.Bool("plain-http"),
		InsecureTLS: cmd.Bool("insecure-tls"),
	}
}

func sourceOptions(cmd *cli.Command) []serializer.SourceOption {
	return []serializer.SourceOption{
		serializer.WithRegistryOptions(registryOptions(cmd)),
		serializer.WithHttpReader(serializer.NewHttpReader(
			serializer.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
			serializer.WithInsecureSkipVerify(cmd.Bool("insecure-tls")),
		)),
	}
}

func datasetLocation(cmd *cli.Command) (string, error) {
	loc := strings.TrimSpace(cmd.String("dataset"))
	if loc == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest,
			"dataset location is required (--dataset or "+api.EnvDataset+")")
	}
	return loc, nil
}

// loadCatalog loads and resolves the dataset named by --dataset.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	loc, err := datasetLocation(cmd)
	if err != nil {
		return nil, err
	}
	return catalog.Load(ctx, loc, sourceOptions(cmd)...)
}

// writeOutput serializes doc to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, doc any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, doc)
}
