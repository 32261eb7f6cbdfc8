package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds template and category names.
const maxNameLength = 100

// componentTypeRegex matches component type names such as "hero-title".
var componentTypeRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateComponentType validates a component type name. It does not check
// the registry: unknown but well-formed types are allowed and render as a
// placeholder.
func ValidateComponentType(typ string) error {
	if typ == "" {
		return New(ErrCodeInvalidInput, "component type cannot be empty")
	}
	if len(typ) > 64 {
		return New(ErrCodeInvalidInput, "component type too long (max 64 characters)")
	}
	if !componentTypeRegex.MatchString(typ) {
		return New(ErrCodeInvalidInput, "invalid component type: %q", typ)
	}
	return nil
}

// ValidateID validates a column, component or template id taken from user
// input. Ids end up in generated identifiers and storage keys, so control
// characters, whitespace and path separators are rejected.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "id contains invalid characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidInput, "id cannot contain path separators")
	}
	return nil
}

// cssLengthRegex matches a CSS length such as "1200px", "80%" or "64rem".
var cssLengthRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(px|%|rem|em|vw|ch)$`)

// ValidateContainerWidth validates a container width: "auto", "100%" or a
// CSS length.
func ValidateContainerWidth(w string) error {
	if w == "" {
		return New(ErrCodeInvalidInput, "container width cannot be empty")
	}
	if w == "auto" || cssLengthRegex.MatchString(w) {
		return nil
	}
	return New(ErrCodeInvalidInput, "invalid container width: %q (want auto or a CSS length)", w)
}

// ValidateName validates a human-readable template or category name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len([]rune(name)) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
