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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/mchmarny/brewbook/pkg/header"
	"github.com/mchmarny/brewbook/pkg/k8s/client"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		uri     string
		wantNS  string
		wantCM  string
		wantErr bool
	}{
		{uri: "cm://cafe/recipes", wantNS: "cafe", wantCM: "recipes"},
		{uri: "cm://cafe/recipes/extra", wantNS: "cafe", wantCM: "recipes/extra"},
		{uri: "cm:// cafe / recipes ", wantNS: "cafe", wantCM: "recipes"},
		{uri: "cm://cafe", wantErr: true},
		{uri: "cm:///recipes", wantErr: true},
		{uri: "cm://cafe/", wantErr: true},
		{uri: "file://cafe/recipes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, name, err := parseConfigMapURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseConfigMapURI(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
			if ns != tt.wantNS || name != tt.wantCM {
				t.Errorf("parseConfigMapURI(%q) = %q, %q, want %q, %q", tt.uri, ns, name, tt.wantNS, tt.wantCM)
			}
		})
	}
}

func TestConfigMapDocument(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		wantKey string
		wantErr bool
	}{
		{"format key", map[string]string{"format": "json", "recipes.json": "{}", "recipes.yaml": "x"}, "recipes.json", false},
		{"yaml default", map[string]string{"recipes.yaml": "x", "recipes.json": "{}"}, "recipes.yaml", false},
		{"yml", map[string]string{"recipes.yml": "x"}, "recipes.yml", false},
		{"single other key", map[string]string{"format": "yaml", "drinks.yaml": "x"}, "drinks.yaml", false},
		{"ambiguous", map[string]string{"a.yaml": "x", "b.yaml": "y"}, "", true},
		{"empty", map[string]string{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _, err := configMapDocument(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestNewConfigMapWriter(t *testing.T) {
	w := NewConfigMapWriter("cafe", "recipes", FormatTable)
	assert.Equal(t, FormatYAML, w.format)

	w = NewConfigMapWriter("cafe", "recipes", Format("xml"))
	assert.Equal(t, FormatJSON, w.format)
	assert.NoError(t, w.Close())
}

type headedDoc struct {
	header.Header `json:",inline" yaml:",inline"`
	Items         []testItem `json:"items" yaml:"items"`
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	cs := fake.NewClientset()
	w := NewConfigMapWriter("cafe", "recipes", FormatYAML)
	w.clientFn = func() (client.Interface, error) { return cs, nil }

	doc := headedDoc{Header: header.New(header.KindRecipeList), Items: []testItem{{Name: "latte"}}}
	require.NoError(t, w.Serialize(context.Background(), doc))

	cm, err := cs.CoreV1().ConfigMaps("cafe").Get(context.Background(), "recipes", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Contains(t, cm.Data["recipes.yaml"], "name: latte")
	assert.Equal(t, "RecipeList", cm.Labels["app.kubernetes.io/component"])
}

func TestConfigMapWriter_ClientError(t *testing.T) {
	w := NewConfigMapWriter("cafe", "recipes", FormatJSON)
	w.clientFn = func() (client.Interface, error) { return nil, errors.New("no cluster") }
	assert.Error(t, w.Serialize(context.Background(), testItem{}))
}

func TestReadSource_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: latte\nvalue: 2\n"), 0o600))

	it, err := FromSource[testItem](context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, testItem{Name: "latte", Value: 2}, *it)

	_, err = ReadSource(context.Background(), filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = ReadSource(context.Background(), "  ")
	assert.Error(t, err)
}

func TestReadSource_Stdin(t *testing.T) {
	doc, err := ReadSource(context.Background(), StdinLocation, WithStdin(strings.NewReader(`{"name":"x"}`)))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, doc.Format)
}

func TestReadSource_ConfigMap(t *testing.T) {
	cs := fake.NewClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "recipes", Namespace: "cafe"},
		Data:       map[string]string{"recipes.json": `{"name":"mocha","value":4}`},
	})

	it, err := FromSource[testItem](context.Background(), "cm://cafe/recipes", WithKubeClient(cs))
	require.NoError(t, err)
	assert.Equal(t, "mocha", it.Name)

	_, err = ReadSource(context.Background(), "cm://cafe/missing", WithKubeClient(cs))
	assert.Error(t, err)
}

func TestReadSource_DecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := FromSource[testItem](context.Background(), path)
	assert.Error(t, err)
}

func TestReadSource_InvalidOCI(t *testing.T) {
	_, err := ReadSource(context.Background(), "oci://")
	assert.Error(t, err)
}

func TestIsLocalFile(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"testdata/recipes.yaml", true},
		{"/etc/brewbook/recipes.json", true},
		{"-", false},
		{"", false},
		{"https://example.com/recipes.json", false},
		{"http://localhost:8080/recipes.yaml", false},
		{"cm://default/recipes", false},
		{"oci://ghcr.io/acme/recipes:v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalFile(tt.location))
		})
	}
}
