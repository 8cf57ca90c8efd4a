package security

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestValidateFile(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

	t.Run("resume pdf", func(t *testing.T) {
		res := ValidateFile(UploadResume, "cv.PDF", pdf)
		assert.True(t, res.Valid, res.Error)
		assert.Equal(t, ".pdf", res.Extension)
		assert.Equal(t, "application/pdf", res.DetectedMIME)
	})

	t.Run("image png", func(t *testing.T) {
		res := ValidateFile(UploadImage, "logo.png", pngBytes(t))
		assert.True(t, res.Valid, res.Error)
	})

	t.Run("image not accepted as resume", func(t *testing.T) {
		res := ValidateFile(UploadResume, "logo.png", pngBytes(t))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "extension not allowed")
	})

	t.Run("spoofed extension", func(t *testing.T) {
		res := ValidateFile(UploadImage, "logo.png", pdf)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match")
	})

	t.Run("missing extension", func(t *testing.T) {
		res := ValidateFile(UploadResume, "resume", pdf)
		assert.False(t, res.Valid)
	})

	t.Run("too small", func(t *testing.T) {
		res := ValidateFile(UploadResume, "a.pdf", []byte("%P"))
		assert.False(t, res.Valid)
	})
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension(UploadResume, "a.docx"))
	assert.Error(t, ValidateFileExtension(UploadResume, "a.exe"))
	assert.Error(t, ValidateFileExtension(UploadImage, "noext"))
	assert.True(t, IsImageExtension(".JPG"))
	assert.False(t, IsImageExtension(".pdf"))
}
