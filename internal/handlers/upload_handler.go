package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diarhyseni/real-estateapp/utils"
)

// UploadHandler accepts base64 data-URI images from the admin forms and
// stores them in the configured S3 bucket.
type UploadHandler struct{}

type uploadRequest struct {
	File   string `json:"file"`
	Folder string `json:"folder"`
}

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	contentType, data, err := decodeDataURI(req.File)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ext, ok := extensions[contentType]
	if !ok {
		http.Error(w, "Unsupported image type", http.StatusBadRequest)
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "properties"
	}
	fileName := fmt.Sprintf("%d-%s.%s", time.Now().Unix(), uuid.NewString(), ext)

	url, err := utils.UploadFileToS3(data, fileName, folder, contentType)
	if err != nil {
		http.Error(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"url":      url,
		"publicId": fmt.Sprintf("%s/%s", folder, fileName),
	})
}

func (h *UploadHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PublicID string `json:"publicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.PublicID == "" {
		http.Error(w, "publicId is required", http.StatusBadRequest)
		return
	}

	if err := utils.DeleteFileFromS3(req.PublicID); err != nil {
		http.Error(w, "Failed to delete image", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDataURI splits a "data:image/png;base64,..." payload into its
// content type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("file must be a base64 data URI")
	}
	meta, encoded, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	contentType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload")
	}
	return contentType, data, nil
}
