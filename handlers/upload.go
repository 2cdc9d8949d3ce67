package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

func MediaRoot() string {
	root := os.Getenv("MEDIA_ROOT")
	if root == "" {
		root = "media"
	}
	return root
}

// saveUploadedImage stores a submitted image under MEDIA_ROOT/posts/ with a
// uuid filename and returns its path relative to MEDIA_ROOT. No file submitted
// returns (nil, "", nil); a non-image file returns a form error message.
func saveUploadedImage(r *http.Request) (*string, string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("error reading image field: %v", err)
	}
	defer file.Close()

	if header.Filename == "" || header.Size == 0 {
		return nil, "", nil
	}

	contentType, err := sniffContentType(file)
	if err != nil {
		return nil, "", err
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, "Upload a jpeg, png, or gif image.", nil
	}

	rel := filepath.Join("posts", uuid.New().String()+ext)
	dst := filepath.Join(MediaRoot(), rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, "", fmt.Errorf("error creating upload dir: %v", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, "", fmt.Errorf("error creating upload file: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return nil, "", fmt.Errorf("error writing upload file: %v", err)
	}

	return &rel, "", nil
}

func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading upload: %v", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("error rewinding upload: %v", err)
	}

	return http.DetectContentType(buf[:n]), nil
}
