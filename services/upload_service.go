package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// UploadService talks to the external image host: an unsigned multipart POST
// that returns a public URL. The host is an opaque collaborator; nothing else
// is stored locally.
type UploadService struct {
	CloudName    string
	UploadPreset string
	BaseURL      string // override in tests
	Client       *http.Client
}

func NewUploadService(cloudName, preset string) *UploadService {
	return &UploadService{
		CloudName:    cloudName,
		UploadPreset: preset,
		Client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *UploadService) endpoint() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", s.CloudName)
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file and returns its public URL. The host's own error
// message is surfaced when it provides one.
func (s *UploadService) Upload(file []byte, filename, folder string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file); err != nil {
		return "", err
	}
	if err := w.WriteField("upload_preset", s.UploadPreset); err != nil {
		return "", err
	}
	if err := w.WriteField("folder", folder); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	var out uploadResult
	_ = json.Unmarshal(raw, &out)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if out.Error != nil && out.Error.Message != "" {
			return "", errors.New(out.Error.Message)
		}
		return "", fmt.Errorf("upload failed: status %d", res.StatusCode)
	}
	if out.SecureURL == "" {
		return "", errors.New("upload failed: no url in response")
	}
	return out.SecureURL, nil
}
