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
	"log/slog"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/mchmarny/brewbook/pkg/defaults"
	"github.com/mchmarny/brewbook/pkg/header"
	"github.com/mchmarny/brewbook/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme is the scheme of ConfigMap locations (cm://namespace/name).
	ConfigMapURIScheme = "cm://"

	// ConfigMapDataKey is the base name of the data key documents are stored
	// under; the format is appended as an extension (recipes.yaml).
	ConfigMapDataKey = "recipes"

	configMapFieldManager = "brewbook"
)

// ConfigMapWriter writes serialized documents to a Kubernetes ConfigMap,
// creating it when it does not exist.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format

	// clientFn is replaced in tests.
	clientFn func() (client.Interface, error)
}

// NewConfigMapWriter creates a writer for the namespace/name ConfigMap.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	if format == FormatTable {
		slog.Warn("table format cannot be read back from a ConfigMap, using YAML")
		format = FormatYAML
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    knownOrJSON(format),
		clientFn:  client.Get,
	}
}

// Serialize applies the document to the ConfigMap using server-side apply.
// The ConfigMap holds the document under recipes.{json|yaml} plus a format
// key, and is labeled with the document kind when it has a header.
func (w *ConfigMapWriter) Serialize(ctx context.Context, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs, err := w.clientFn()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	content, err := Marshal(w.format, doc)
	if err != nil {
		return err
	}

	labels := map[string]string{
		"app.kubernetes.io/name": "brewbook",
	}
	if h, ok := doc.(interface{ GetKind() header.Kind }); ok {
		labels["app.kubernetes.io/component"] = h.GetKind().String()
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(labels).
		WithData(map[string]string{
			configMapKey(w.format): string(content),
			"format":               string(w.format),
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(ctx, cm, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func configMapKey(format Format) string {
	return ConfigMapDataKey + "." + string(format)
}

// configMapDocument picks the document out of ConfigMap data. The key named
// by the "format" entry wins, then recipes.yaml, recipes.yml and
// recipes.json, and finally the only data key when there is exactly one
// besides "format".
func configMapDocument(data map[string]string) (key, content string, err error) {
	candidates := []string{}
	if f, ok := data["format"]; ok && f != "" {
		candidates = append(candidates, ConfigMapDataKey+"."+f)
	}
	candidates = append(candidates,
		ConfigMapDataKey+".yaml",
		ConfigMapDataKey+".yml",
		ConfigMapDataKey+".json")

	for _, k := range candidates {
		if v, ok := data[k]; ok {
			return k, v, nil
		}
	}

	others := make([]string, 0, len(data))
	for k := range data {
		if k != "format" {
			others = append(others, k)
		}
	}
	if len(others) == 1 {
		return others[0], data[others[0]], nil
	}
	sort.Strings(others)
	return "", "", fmt.Errorf("no dataset key found, expected %s.{yaml|json}, got %v", ConfigMapDataKey, others)
}

// parseConfigMapURI parses cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
