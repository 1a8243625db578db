package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// UploadResult is what the image store hands back for a stored proof.
type UploadResult struct {
	URL     string
	Receipt json.RawMessage
}

// ProofStore is the external object-storage collaborator holding payment
// proof images. The upload must complete before any Contribution row exists.
type ProofStore interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader) (*UploadResult, error)
}

// CloudinaryConfig points the store at an unsigned upload preset.
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string
	BaseURL      string // defaults to the Cloudinary API; overridable in tests
}

type cloudinaryStore struct {
	cfg    CloudinaryConfig
	client *http.Client
}

func NewCloudinaryStore(cfg CloudinaryConfig) ProofStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.cloudinary.com/v1_1"
	}
	return &cloudinaryStore{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Bytes     int64  `json:"bytes"`
	Format    string `json:"format"`
}

func (s *cloudinaryStore) Upload(ctx context.Context, fileName, contentType string, file io.Reader) (*UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := func() error {
			if err := mw.WriteField("upload_preset", s.cfg.UploadPreset); err != nil {
				return err
			}
			if s.cfg.Folder != "" {
				if err := mw.WriteField("folder", s.cfg.Folder); err != nil {
					return err
				}
			}
			part, err := mw.CreateFormFile("file", fileName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, file); err != nil {
				return err
			}
			return mw.Close()
		}()
		pw.CloseWithError(err)
	}()

	endpoint := fmt.Sprintf("%s/%s/image/upload", s.cfg.BaseURL, s.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image store rejected upload: status %d", resp.StatusCode)
	}

	var uploaded cloudinaryUploadResponse
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return nil, err
	}
	if uploaded.SecureURL == "" {
		return nil, fmt.Errorf("image store response missing secure_url")
	}

	return &UploadResult{
		URL:     uploaded.SecureURL,
		Receipt: body,
	}, nil
}
