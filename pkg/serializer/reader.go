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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the format from a file extension:
// .json is JSON, .yaml and .yml are YAML, .table and .txt are table.
// Matching is case-insensitive. The second result is false when the
// extension is not recognized.
func FormatFromPath(filePath string) (Format, bool) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".table", ".txt":
		return FormatTable, true
	default:
		return FormatJSON, false
	}
}

// DetectFormat picks the decoding format for a document named name. A known
// extension wins; otherwise a document starting with '{' or '[' is JSON and
// anything else is YAML.
func DetectFormat(name string, data []byte) Format {
	if f, ok := FormatFromPath(name); ok && f != FormatTable {
		return f
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Reader deserializes JSON or YAML documents from an io.Reader.
//
// Close releases the input when it implements io.Closer and is safe to call
// more than once.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for input. Table format cannot be read.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Deserialize decodes the next document from the input into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the input when it is closeable.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(format Format, data []byte, v any) error {
	r, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return err
	}
	return r.Deserialize(v)
}
