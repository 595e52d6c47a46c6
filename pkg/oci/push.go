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

package oci

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/mchmarny/brewbook/pkg/defaults"
	apperrors "github.com/mchmarny/brewbook/pkg/errors"
)

// AnnotationLastUpdated carries the dataset's lastUpdated stamp.
const AnnotationLastUpdated = "dev.brewbook.dataset.last-updated"

// RegistryOptions configures the connection to a registry.
type RegistryOptions struct {
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushOptions configures publishing a dataset file.
type PushOptions struct {
	RegistryOptions

	// Path is the dataset file to publish.
	Path string
	// Reference is the destination. A missing tag is published as DefaultTag.
	Reference *Reference
	// Annotations are added to the manifest.
	Annotations map[string]string
}

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the digest of the pushed manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
}

// Push publishes a dataset file to a registry as a single-layer artifact.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	if opts.Path == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "dataset path is required")
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to read dataset", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	ref := opts.Reference.WithTag(opts.Reference.TagOrDefault())
	store := memory.New()

	if _, err := packDataset(ctx, store, filepath.Base(opts.Path), data, ref.Tag, opts.Annotations); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to package dataset", err)
	}

	repo, err := newRepository(ref, opts.RegistryOptions)
	if err != nil {
		return nil, err
	}

	slog.Info("pushing dataset artifact",
		"reference", ref.ImageReference(),
		"size", len(data))

	desc, err := oras.Copy(ctx, store, ref.Tag, repo, ref.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push artifact to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

// Pull fetches a dataset artifact from a registry. A missing tag is
// resolved as DefaultTag.
func Pull(ctx context.Context, ref *Reference, opts RegistryOptions) (*Artifact, error) {
	if ref == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPullTimeout)
	defer cancel()

	repo, err := newRepository(ref, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("pulling dataset artifact", "reference", ref.ImageReference())

	art, err := fetchDataset(ctx, repo, ref.TagOrDefault())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to pull artifact from registry", err)
	}
	return art, nil
}

func newRepository(ref *Reference, opts RegistryOptions) (*remote.Repository, error) {
	repo, err := remote.NewRepository(ref.Repo())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = newAuthClient(opts.PlainHTTP, opts.InsecureTLS)
	return repo, nil
}

// newAuthClient creates a registry client using Docker credentials when
// they are available.
func newAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}

	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable, using anonymous access", "error", err)
		return client
	}
	client.Credential = credentials.Credential(credStore)
	return client
}

// DefaultAnnotations returns the manifest annotations the CLI publishes
// with: a title, the tool version and the dataset's lastUpdated stamp.
func DefaultAnnotations(version, lastUpdated string) map[string]string {
	a := map[string]string{
		ociv1.AnnotationTitle: "brewbook dataset",
	}
	if version != "" {
		a[ociv1.AnnotationVersion] = version
	}
	if lastUpdated != "" {
		a[AnnotationLastUpdated] = lastUpdated
	}
	return a
}
