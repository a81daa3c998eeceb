package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under destDir with a generated
// storage key and returns that key. The original filename is kept only as
// display metadata by the caller.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	storageKey := uuid.NewString() + filepath.Ext(file.Filename)

	dst, err := os.Create(filepath.Join(destDir, storageKey))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return storageKey, nil
}

// GetFileURL maps a storage key to its public download path
func GetFileURL(storageKey string) string {
	if storageKey == "" {
		return ""
	}
	return "/uploads/" + storageKey
}
