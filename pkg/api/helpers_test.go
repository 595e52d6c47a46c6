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

package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/brewbook/pkg/catalog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testDataset = `
lastUpdated: "2026-01-12"
bases:
  - id: espresso-double
    measurements:
      - {label: Dose, value: 18g}
      - {label: Yield, value: 36g}
    cupPrep: [Warm the cup]
    buildSteps: [Pull the shot]
    tags: [classic]
recipes:
  - id: americano
    name: Americano
    category: Espresso
    baseId: espresso-double
    measurements:
      - {label: Water, value: 150ml}
    tags: [hot]
  - id: oat-latte
    name: Oat Latte
    category: Milk
    yields: 1 cup
    buildOrders:
      - {title: Hot, steps: [Steam oat milk, Pour]}
      - {title: Iced, steps: [Fill with ice, Pour]}
  - id: hojicha
    name: Hojicha
    category: Tea
    baseId: missing-base
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var ds catalog.Dataset
	require.NoError(t, yaml.Unmarshal([]byte(testDataset), &ds))
	return catalog.Reload(&ds)
}

func writeDataset(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
