// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
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

// Package client provides a shared Kubernetes client for the ConfigMap
// capture store.
//
// The client is created once via sync.Once and reused, so repeated captures
// do not open new API server connections:
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Configuration is discovered from the KUBECONFIG environment variable,
// ~/.kube/config, or the in-cluster service account. BuildKubeClient
// bypasses the shared instance for an explicit kubeconfig path.
package client
