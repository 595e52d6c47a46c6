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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"recipes.json", FormatJSON, true},
		{"recipes.JSON", FormatJSON, true},
		{"recipes.yaml", FormatYAML, true},
		{"/tmp/recipes.yml", FormatYAML, true},
		{"out.txt", FormatTable, true},
		{"out.table", FormatTable, true},
		{"recipes", FormatJSON, false},
		{"recipes.xml", FormatJSON, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FormatFromPath(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FormatFromPath(%q) = %v, %v, want %v, %v", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{"extension wins", "recipes.yaml", `{"recipes": []}`, FormatYAML},
		{"sniff object", "stdin", "  \n{\"recipes\": []}", FormatJSON},
		{"sniff array", "data", "[]", FormatJSON},
		{"sniff yaml", "stdin", "recipes: []", FormatYAML},
		{"table extension sniffs", "recipes.txt", "recipes: []", FormatYAML},
		{"empty", "", "", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.file, []byte(tt.data)))
		})
	}
}

func TestNewReader(t *testing.T) {
	_, err := NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	r, err := NewReader(FormatYAML, strings.NewReader("name: latte\nvalue: 3\n"))
	require.NoError(t, err)
	var it testItem
	require.NoError(t, r.Deserialize(&it))
	assert.Equal(t, testItem{Name: "latte", Value: 3}, it)
	assert.NoError(t, r.Close())
}

func TestReader_DeserializeErrors(t *testing.T) {
	var nilReader *Reader
	assert.Error(t, nilReader.Deserialize(&testItem{}))
	assert.NoError(t, nilReader.Close())

	r, err := NewReader(FormatJSON, nil)
	require.NoError(t, err)
	assert.Error(t, r.Deserialize(&testItem{}))

	r, err = NewReader(FormatJSON, strings.NewReader("{not json"))
	require.NoError(t, err)
	assert.Error(t, r.Deserialize(&testItem{}))
}

type trackingCloser struct {
	*strings.Reader
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	if c.closed > 1 {
		return errors.New("closed twice")
	}
	return nil
}

func TestReader_CloseOnce(t *testing.T) {
	c := &trackingCloser{Reader: strings.NewReader("{}")}
	r, err := NewReader(FormatJSON, c)
	require.NoError(t, err)

	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
	assert.Equal(t, 1, c.closed)
}

func TestUnmarshal(t *testing.T) {
	var it testItem
	require.NoError(t, Unmarshal(FormatJSON, []byte(`{"name":"mocha","value":1}`), &it))
	assert.Equal(t, "mocha", it.Name)

	assert.Error(t, Unmarshal(FormatTable, []byte("x"), &it))
}
