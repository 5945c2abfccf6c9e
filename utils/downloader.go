package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageSize is the largest image accepted for upload.
const MaxImageSize = 5 << 20

// AllowedImageTypes are the content types accepted for direct uploads.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var (
	ErrImageTooLarge   = errors.New("image must be less than 5 MB")
	ErrImageTypeDenied = errors.New("image must be JPEG, PNG, or WebP")
	ErrImageURLDenied  = errors.New("image URL must be http or https")
)

// ImageExtension returns the lower-cased file extension of an image URL, "jpg" when there is none.
func ImageExtension(imageURL string) string {
	ext := ""
	if u, err := url.Parse(imageURL); err == nil {
		ext = path.Ext(u.Path)
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "jpg"
	}
	return ext
}

// ImageContentType maps an extension to the content type stored with the object.
func ImageContentType(ext string) string {
	if ext == "jpg" {
		return "image/jpeg"
	}
	return "image/" + ext
}

// NewImageKey returns a fresh, unique object key with the given extension.
func NewImageKey(ext string) string {
	return fmt.Sprintf("%s.%s", uuid.NewString(), ext)
}

// UploadImageFromURL downloads an image and stores it in the bucket under a new key.
// It returns the public URL of the stored copy.
func UploadImageFromURL(ctx context.Context, imageURL string, timeout time.Duration) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrImageURLDenied
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ToniesCollectionBot/1.0)")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageSize+1))
	if err != nil {
		return "", err
	}
	if len(bodyBytes) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	ext := ImageExtension(imageURL)
	key, err := UploadFileToS3(ctx, bytes.NewReader(bodyBytes), NewImageKey(ext), ImageContentType(ext))
	if err != nil {
		return "", err
	}
	return PublicURL(key), nil
}

// UploadImage stores a user-supplied image after checking its size and type.
func UploadImage(ctx context.Context, file io.Reader, filename, contentType string, size int64) (string, error) {
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}
	if !AllowedImageTypes[contentType] {
		return "", ErrImageTypeDenied
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "jpg"
	}
	key, err := UploadFileToS3(ctx, file, NewImageKey(ext), contentType)
	if err != nil {
		return "", err
	}
	return PublicURL(key), nil
}

// DeleteImageByURL removes the stored object a public image URL points at.
func DeleteImageByURL(ctx context.Context, imageURL string) error {
	key, err := ObjectKeyFromURL(imageURL)
	if err != nil {
		return err
	}
	return DeleteFileFromS3(ctx, key)
}
