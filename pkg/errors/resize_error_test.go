package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestResizeErrorWrapping(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := ErrDecode(cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("ResizeError should unwrap to its cause")
	}
	if got := err.Error(); got != "decode_failed: image could not be decoded (unexpected EOF)" {
		t.Fatalf("Error() = %q", got)
	}
	if got := ErrEmptyOutput().Error(); got != "empty_output: resize produced no data" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("variant 512x384: %w", ErrUpload(stderrors.New("denied")))
	if got := CodeOf(wrapped); got != CodeUpload {
		t.Fatalf("CodeOf = %q, want %q", got, CodeUpload)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Fatalf("CodeOf(plain) = %q", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Fatalf("CodeOf(nil) = %q", got)
	}
}
