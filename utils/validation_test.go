package utils

import (
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "jane@example.com", want: true},
		{name: "dotted local part", email: "jane.doe@example.com", want: true},
		{name: "subdomain", email: "jane@mail.example.co", want: true},
		{name: "minimal valid", email: "x@y.zz", want: true},
		{name: "surrounding whitespace", email: "  jane@example.com  ", want: true},
		{name: "empty", email: "", want: false},
		{name: "whitespace only", email: "   ", want: false},
		{name: "no at sign", email: "janeexample.com", want: false},
		{name: "missing local part", email: "@example.com", want: false},
		{name: "missing domain", email: "jane@.com", want: false},
		{name: "missing extension", email: "jane@example", want: false},
		{name: "one letter tld", email: "jane@example.c", want: false},
		{name: "double dot", email: "jane..doe@example.com", want: false},
		{name: "trailing dot", email: "jane@example.com.", want: false},
		{name: "leading dot", email: ".jane@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestEmailErrorReasons(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "Email is required"},
		{"jane@x", "Please enter a valid email address"},
		{"jane@example.c", "Please enter a valid email address"},
		{"jane@example.com", ""},
	}

	for _, tt := range tests {
		if got := EmailError(tt.email); got != tt.want {
			t.Errorf("EmailError(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "ten digit us number", phone: "(555) 123-4567", want: true},
		{name: "dotted", phone: "555.123.4567", want: true},
		{name: "with country code", phone: "+1 555 123 4567", want: true},
		{name: "fifteen digits", phone: "123456789012345", want: true},
		{name: "sixteen digits", phone: "1234567890123456", want: false},
		{name: "too short", phone: "555-123", want: false},
		{name: "nine digits", phone: "555123456", want: false},
		{name: "empty", phone: "", want: false},
		{name: "letters only", phone: "call me", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if ValidateRequired("   ") {
		t.Error("whitespace-only string should not satisfy required")
	}
	if !ValidateRequired(" dragon sleeve ") {
		t.Error("non-empty string should satisfy required")
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		size     int64
		mime     string
		wantErr  bool
	}{
		{name: "jpeg under limit", fileName: "ref.jpg", size: 1 << 20, mime: "image/jpeg", wantErr: false},
		{name: "png at limit", fileName: "ref.png", size: 5 * 1024 * 1024, mime: "image/png", wantErr: false},
		{name: "over limit", fileName: "ref.jpg", size: 5*1024*1024 + 1, mime: "image/jpeg", wantErr: true},
		{name: "heic with no mime", fileName: "IMG_0001.HEIC", size: 1 << 20, mime: "", wantErr: false},
		{name: "heif extension", fileName: "photo.heif", size: 1 << 20, mime: "application/octet-stream", wantErr: false},
		{name: "pdf rejected", fileName: "ref.pdf", size: 1 << 20, mime: "application/pdf", wantErr: true},
		{name: "gif rejected", fileName: "ref.gif", size: 1 << 20, mime: "image/gif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.fileName, tt.size, tt.mime)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFile(%q, %d, %q) error = %v, wantErr %v", tt.fileName, tt.size, tt.mime, err, tt.wantErr)
			}
		})
	}
}
