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

// Package serializer reads and writes brewbook documents.
//
// Writers render documents as JSON, YAML or a table:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer func() {
//	    if c, ok := w.(serializer.Closer); ok {
//	        _ = c.Close()
//	    }
//	}()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// A cm://namespace/name path writes to a ConfigMap instead of a file.
//
// ReadSource and FromSource fetch a document from a local file, an HTTP(S)
// URL, a ConfigMap, an OCI artifact or standard input and decode it:
//
//	ds, err := serializer.FromSource[catalog.Dataset](ctx, "https://example.com/recipes.json")
//
// HTTP fetches retry transient failures with exponential backoff.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer
