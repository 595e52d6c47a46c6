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

// Package client builds the Kubernetes client used to read datasets stored
// in ConfigMaps.
//
// Get returns a process-wide client created once from the discovered
// kubeconfig:
//
//	cs, err := client.Get()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	data, err := client.ConfigMapData(ctx, cs, "cafe", "recipes")
//
// Discovery order is an explicit path, $KUBECONFIG, ~/.kube/config, and
// finally the in-cluster service account. New builds an unshared client from
// a specific kubeconfig.
package client
