package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Extension allow-lists. Photos are images only; note attachments may also
// be PDFs. There is no content sniffing and no size limit.
var (
	photoExtensions      = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
	attachmentExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".pdf": true}
)

// saveUpload stores an uploaded file under uploadDir and returns the stored
// filename. The name gets a millisecond timestamp prefix to keep uploads
// with the same original name apart.
func saveUpload(c *gin.Context, file *multipart.FileHeader, uploadDir string, allowed map[string]bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", fmt.Errorf("file extension %q is not allowed", ext)
	}

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeFilename(filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, storedName)); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return storedName, nil
}

// sanitizeFilename strips anything outside a conservative character set.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// removeUpload deletes a stored file, ignoring failures. Record deletion
// proceeds whether or not the file was still on disk.
func removeUpload(uploadDir, storedName string) {
	if storedName == "" {
		return
	}
	_ = os.Remove(filepath.Join(uploadDir, storedName))
}
