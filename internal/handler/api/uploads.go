// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/wolvhq/wolv-site/internal/remote"
)

// maxUploadBytes caps multipart uploads at 50 MB.
const maxUploadBytes = 50 << 20

// uploadResponse is the payload for a stored object.
type uploadResponse struct {
	URL    string `json:"url"`
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

// Upload stores a multipart file in the remote object store and
// returns its public URL. The "bucket" form field selects images
// (default) or videos.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		WriteNotConfigured(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	bucket := remote.BucketImages
	if r.FormValue("bucket") == "videos" {
		bucket = remote.BucketVideos
	}

	data, err := io.ReadAll(file)
	if err != nil {
		WriteInternalError(w, "Failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := uuid.NewString() + ext

	url, err := h.client.UploadObject(r.Context(), bucket, path, data, contentType)
	if err != nil {
		h.writeRemoteError(w, err)
		return
	}

	WriteCreated(w, uploadResponse{
		URL:    url,
		Bucket: bucket,
		Path:   path,
	})
}
