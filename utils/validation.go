package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rules carried over from the production booking form. The
// email pattern is deliberately conservative: non-empty local part,
// non-empty domain label, and a top-level label of at least two
// characters, with no leading/trailing/double dots anywhere.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._%-]*[a-zA-Z0-9])?@[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}$`)

var nonDigitRegex = regexp.MustCompile(`\D`)

const (
	// MaxFileSizeMB caps each uploaded reference/body photo.
	MaxFileSizeMB = 5

	maxPhoneDigits = 15
	minPhoneDigits = 10
)

var allowedImageMIMEs = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/heic",
	"image/heif",
}

// ValidateEmail reports whether email is syntactically acceptable.
func ValidateEmail(email string) bool {
	return EmailError(email) == ""
}

// EmailError returns a human-readable reason the email is rejected, or
// "" when it is acceptable. Used directly for inline field messages.
func EmailError(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}

	trimmed := strings.TrimSpace(email)

	if !emailRegex.MatchString(trimmed) {
		return "Please enter a valid email address"
	}

	atIndex := strings.Index(trimmed, "@")
	dotIndex := strings.LastIndex(trimmed, ".")

	if atIndex == -1 || dotIndex == -1 || dotIndex <= atIndex {
		return "Please enter a valid email address"
	}
	if atIndex == 0 {
		return "Please enter a valid email address"
	}
	if dotIndex-atIndex <= 1 {
		return "Please enter a complete email address (missing domain)"
	}
	if len(trimmed)-dotIndex <= 2 {
		return "Please enter a complete email address (missing domain extension)"
	}
	if strings.Contains(trimmed, "..") || strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		return "Please enter a valid email address"
	}

	return ""
}

// ValidatePhone reports whether phone has 10-15 digits once every
// non-digit character is stripped. No country-code semantics.
func ValidatePhone(phone string) bool {
	return PhoneError(phone) == ""
}

// PhoneError returns a human-readable reason the phone is rejected, or
// "" when it is acceptable.
func PhoneError(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}

	digits := nonDigitRegex.ReplaceAllString(phone, "")

	if len(digits) < minPhoneDigits {
		return "Please enter a complete phone number (at least 10 digits)"
	}
	if len(digits) > maxPhoneDigits {
		return "Phone number is too long"
	}

	return ""
}

// ValidateRequired reports whether value is non-empty after trimming.
func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidateFileSize reports whether size fits under the upload cap.
func ValidateFileSize(size int64) bool {
	return size <= MaxFileSizeMB*1024*1024
}

// ValidateFileType accepts the fixed image MIME allow-list, plus
// .heic/.heif filenames regardless of reported MIME since browsers
// often report no type for them.
func ValidateFileType(fileName, mimeType string) bool {
	lower := strings.ToLower(fileName)
	if strings.HasSuffix(lower, ".heic") || strings.HasSuffix(lower, ".heif") {
		return true
	}
	for _, allowed := range allowedImageMIMEs {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// ValidateFile checks both size and type constraints for an upload.
func ValidateFile(fileName string, size int64, mimeType string) error {
	if !ValidateFileSize(size) {
		return fmt.Errorf("file exceeds the %dMB limit", MaxFileSizeMB)
	}
	if !ValidateFileType(fileName, mimeType) {
		return fmt.Errorf("unsupported file type %q", mimeType)
	}
	return nil
}
