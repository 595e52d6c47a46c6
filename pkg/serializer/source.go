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

package serializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/mchmarny/brewbook/pkg/k8s/client"
	"github.com/mchmarny/brewbook/pkg/oci"
)

// StdinLocation reads the document from standard input.
const StdinLocation = "-"

// Document is a raw document fetched from a location.
type Document struct {
	// Location is the location the document was read from.
	Location string
	// Format is the format the document will be decoded with.
	Format Format
	// Data is the raw content.
	Data []byte
}

type sourceConfig struct {
	http     *HttpReader
	kube     func() (client.Interface, error)
	registry oci.RegistryOptions
	stdin    io.Reader
}

// SourceOption configures ReadSource.
type SourceOption func(*sourceConfig)

// WithHttpReader sets the reader used for http and https locations.
func WithHttpReader(r *HttpReader) SourceOption {
	return func(c *sourceConfig) {
		c.http = r
	}
}

// WithKubeClient sets the client used for cm:// locations.
func WithKubeClient(cs client.Interface) SourceOption {
	return func(c *sourceConfig) {
		c.kube = func() (client.Interface, error) { return cs, nil }
	}
}

// WithRegistryOptions configures access to oci:// locations.
func WithRegistryOptions(opts oci.RegistryOptions) SourceOption {
	return func(c *sourceConfig) {
		c.registry = opts
	}
}

// WithStdin sets the reader used for the "-" location.
func WithStdin(r io.Reader) SourceOption {
	return func(c *sourceConfig) {
		c.stdin = r
	}
}

// IsLocalFile reports whether location names a file on the local file
// system rather than stdin, a URL, a ConfigMap or an OCI artifact.
func IsLocalFile(location string) bool {
	location = strings.TrimSpace(location)
	switch {
	case location == "", location == StdinLocation:
		return false
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return false
	case strings.HasPrefix(location, ConfigMapURIScheme), oci.IsReference(location):
		return false
	default:
		return true
	}
}

// ReadSource fetches the document at location. Supported locations:
//
//   - local file paths
//   - http:// and https:// URLs
//   - cm://namespace/name ConfigMaps
//   - oci://registry/repository[:tag] artifacts
//   - "-" for standard input
//
// The format is taken from the file extension (URL path, ConfigMap key or
// artifact title) and sniffed from the content otherwise.
func ReadSource(ctx context.Context, location string, opts ...SourceOption) (*Document, error) {
	cfg := &sourceConfig{
		kube:  client.Get,
		stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("dataset location is empty")
	}

	var (
		name string
		data []byte
		err  error
	)

	switch {
	case location == StdinLocation:
		name = "stdin"
		data, err = io.ReadAll(cfg.stdin)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		name, data, err = readHTTP(ctx, cfg, location)
	case strings.HasPrefix(location, ConfigMapURIScheme):
		name, data, err = readConfigMap(ctx, cfg, location)
	case oci.IsReference(location):
		name, data, err = readOCI(ctx, cfg, location)
	default:
		name = location
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	doc := &Document{
		Location: location,
		Format:   DetectFormat(name, data),
		Data:     data,
	}
	slog.Debug("read document",
		"location", location,
		"format", doc.Format,
		"size", len(data))
	return doc, nil
}

func readHTTP(ctx context.Context, cfg *sourceConfig, location string) (string, []byte, error) {
	r := cfg.http
	if r == nil {
		r = NewHttpReader()
	}
	name := location
	if u, err := url.Parse(location); err == nil {
		name = path.Base(u.Path)
	}
	data, err := r.ReadWithContext(ctx, location)
	return name, data, err
}

func readConfigMap(ctx context.Context, cfg *sourceConfig, location string) (string, []byte, error) {
	namespace, name, err := parseConfigMapURI(location)
	if err != nil {
		return "", nil, err
	}
	cs, err := cfg.kube()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	data, err := client.ConfigMapData(ctx, cs, namespace, name)
	if err != nil {
		return "", nil, err
	}
	key, content, err := configMapDocument(data)
	if err != nil {
		return "", nil, fmt.Errorf("ConfigMap %s/%s: %w", namespace, name, err)
	}
	return key, []byte(content), nil
}

func readOCI(ctx context.Context, cfg *sourceConfig, location string) (string, []byte, error) {
	ref, err := oci.ParseReference(location)
	if err != nil {
		return "", nil, err
	}
	art, err := oci.Pull(ctx, ref, cfg.registry)
	if err != nil {
		return "", nil, err
	}
	return art.Name, art.Data, nil
}

// FromSource reads the document at location and decodes it into a new T.
func FromSource[T any](ctx context.Context, location string, opts ...SourceOption) (*T, error) {
	doc, err := ReadSource(ctx, location, opts...)
	if err != nil {
		return nil, err
	}
	var v T
	if err := Unmarshal(doc.Format, doc.Data, &v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", location, err)
	}
	return &v, nil
}
