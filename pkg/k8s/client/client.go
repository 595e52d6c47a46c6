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

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"

	"github.com/mchmarny/brewbook/pkg/defaults"
)

// EnvKubeconfig names the environment variable holding a kubeconfig path.
const EnvKubeconfig = "KUBECONFIG"

// Interface is an alias for kubernetes.Interface so tests can substitute
// fake.NewClientset().
type Interface = kubernetes.Interface

var (
	sharedOnce   sync.Once
	sharedClient Interface
	sharedErr    error
)

// Get returns the process-wide client, building it on first use from the
// discovered kubeconfig. Later calls return the same client and error.
func Get() (Interface, error) {
	sharedOnce.Do(func() {
		var cs *kubernetes.Clientset
		cs, sharedErr = New("")
		if sharedErr == nil {
			sharedClient = cs
		}
	})
	return sharedClient, sharedErr
}

// New builds a client from kubeconfig. An empty path falls back to
// ResolveKubeconfig and finally to the in-cluster service account.
func New(kubeconfig string) (*kubernetes.Clientset, error) {
	config, err := restConfig(ResolveKubeconfig(kubeconfig))
	if err != nil {
		return nil, err
	}

	cs, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return cs, nil
}

// ResolveKubeconfig returns the kubeconfig path to use: the explicit path,
// then $KUBECONFIG, then ~/.kube/config when it exists. Empty means
// in-cluster configuration.
func ResolveKubeconfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvKubeconfig); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

func restConfig(kubeconfig string) (*rest.Config, error) {
	if kubeconfig == "" {
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
	}
	return config, nil
}

// ConfigMapData returns the data of a ConfigMap.
func ConfigMapData(ctx context.Context, cs Interface, namespace, name string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}
	return cm.Data, nil
}
