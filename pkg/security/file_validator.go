package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// UploadKind is the purpose of an uploaded file; each kind has its own whitelist.
type UploadKind string

const (
	UploadResume UploadKind = "resume"
	UploadImage  UploadKind = "image"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Lower-cased file extension
	DetectedMIME string // MIME type sniffed from content
	Error        string // Error message if validation failed
}

// Magic byte signatures, keyed by lowercase extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},                           // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

var allowedExtensions = map[UploadKind]map[string]bool{
	UploadResume: {".pdf": true, ".doc": true, ".docx": true},
	UploadImage:  {".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true},
}

// application/octet-stream is deliberately absent
var allowedMIMETypes = map[UploadKind]map[string]bool{
	UploadResume: {
		"application/pdf":          true,
		"application/msword":       true,
		"application/x-ole-storage": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/zip": true,
	},
	UploadImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
}

// ValidateFile checks an upload in three layers:
// 1. Extension whitelist for the kind
// 2. Magic bytes match the extension
// 3. Sniffed MIME type whitelist for the kind
func ValidateFile(kind UploadKind, filename string, data []byte) FileValidationResult {
	detected := mimetype.Detect(data).String()
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = detected[:i]
	}
	result := FileValidationResult{DetectedMIME: detected}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	exts, ok := allowedExtensions[kind]
	if !ok {
		result.Error = "unknown upload kind: " + string(kind)
		return result
	}
	if !exts[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if !allowedMIMETypes[kind][detected] {
		result.Error = "MIME type not allowed: " + detected
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(kind UploadKind, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if !allowedExtensions[kind][ext] {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}

// IsImageExtension checks if the extension is an image type
func IsImageExtension(ext string) bool {
	return allowedExtensions[UploadImage][strings.ToLower(ext)]
}
