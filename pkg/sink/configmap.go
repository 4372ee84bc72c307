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

package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/statuskit/statuskit/pkg/defaults"
	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/k8s/client"
)

// configMapFieldManager identifies the CLI as the field owner in
// server-side apply operations.
const configMapFieldManager = "skctl"

// ConfigMapStore writes captured documents to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
// Text captures land under data, binary captures (zip archives) under
// binaryData.
type ConfigMapStore struct {
	namespace string
	name      string
	client    client.Interface
}

// ConfigMapStoreOption configures a ConfigMapStore.
type ConfigMapStoreOption func(*ConfigMapStore)

// WithKubeClient injects a Kubernetes client; used by tests with a fake
// clientset. Without it the shared kubeconfig-discovered client is used.
func WithKubeClient(c client.Interface) ConfigMapStoreOption {
	return func(s *ConfigMapStore) {
		s.client = c
	}
}

// NewConfigMapStore creates a store that applies captures to the named
// ConfigMap.
func NewConfigMapStore(namespace, name string, opts ...ConfigMapStoreOption) *ConfigMapStore {
	s := &ConfigMapStore{
		namespace: namespace,
		name:      name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put applies the captured document to the ConfigMap using server-side
// apply, taking field ownership from any previous writer.
func (s *ConfigMapStore) Put(ctx context.Context, doc *Document) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	kube := s.client
	if kube == nil {
		c, _, err := client.GetKubeClient()
		if err != nil {
			return skerrors.Wrap(skerrors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
		kube = c
	}

	slog.Info("applying capture ConfigMap",
		"namespace", s.namespace,
		"name", s.name,
		"document", doc.Name,
		"binary", doc.Binary,
		"bytes", len(doc.Data))

	configMap := accorev1.ConfigMap(s.name, s.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "statuskit",
			"app.kubernetes.io/component":  "capture",
			"app.kubernetes.io/managed-by": configMapFieldManager,
		}).
		WithData(map[string]string{
			"contentType": doc.ContentType,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})

	if doc.Binary {
		configMap = configMap.WithBinaryData(map[string][]byte{doc.Name: doc.Data})
	} else {
		configMap = configMap.WithData(map[string]string{doc.Name: string(doc.Data)})
	}

	_, err := kube.CoreV1().ConfigMaps(s.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: configMapFieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return skerrors.Wrap(skerrors.ErrCodeInternal,
			fmt.Sprintf("failed to apply ConfigMap %s/%s", s.namespace, s.name), err)
	}

	return nil
}
