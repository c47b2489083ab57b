package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxDimension bounds the width and height of a surface so a single RGBA
// buffer stays within 1 GiB.
const MaxDimension = 16384

// ValidateDimensions checks that a canvas size is drawable.
// Both sides must be positive and no larger than MaxDimension.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions %dx%d exceed the maximum of %d", width, height, MaxDimension)
	}
	return nil
}

// ValidateStyleKey validates the shape of a style key before it is looked up
// or registered. Keys are lowercase ASCII words joined by underscores.
func ValidateStyleKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidStyle, "style key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidStyle, "style key too long (max 64 characters)")
	}
	for _, r := range key {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' {
			return New(ErrCodeInvalidStyle, "style key %q may only contain a-z, 0-9 and _", key)
		}
	}
	return nil
}

// ValidateOutputPath validates the destination of an exported image.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//   - Extension, if present, must be .png
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	if ext := filepath.Ext(path); ext != "" && !strings.EqualFold(ext, ".png") {
		return New(ErrCodeInvalidPath, "output path must end in .png, got %q", ext)
	}

	return nil
}
