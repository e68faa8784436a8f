package errors

import (
	stderrors "errors"
	"fmt"
)

type ResizeError struct {
	Code    string
	Message string
	Err     error
}

func (e *ResizeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ResizeError) Unwrap() error {
	return e.Err
}

const (
	CodeDecode            = "decode_failed"
	CodeEncode            = "encode_failed"
	CodeUnsupportedFormat = "unsupported_format"
	CodeEmptyOutput       = "empty_output"
	CodeUpload            = "upload_failed"
	CodeDownload          = "download_failed"
	CodeSourceTooLarge    = "source_too_large"
	CodeInvalidEvent      = "invalid_event"
	CodeConfig            = "invalid_config"
)

var (
	ErrDecode = func(err error) *ResizeError {
		return &ResizeError{Code: CodeDecode, Message: "image could not be decoded", Err: err}
	}
	ErrEncode = func(err error) *ResizeError {
		return &ResizeError{Code: CodeEncode, Message: "image could not be encoded", Err: err}
	}
	ErrUnsupportedFormat = func(err error) *ResizeError {
		return &ResizeError{Code: CodeUnsupportedFormat, Message: "unsupported image format", Err: err}
	}
	ErrEmptyOutput = func() *ResizeError {
		return &ResizeError{Code: CodeEmptyOutput, Message: "resize produced no data"}
	}
	ErrUpload = func(err error) *ResizeError {
		return &ResizeError{Code: CodeUpload, Message: "variant could not be stored", Err: err}
	}
	ErrDownload = func(err error) *ResizeError {
		return &ResizeError{Code: CodeDownload, Message: "original could not be read", Err: err}
	}
	ErrSourceTooLarge = func(size, limit int64) *ResizeError {
		return &ResizeError{Code: CodeSourceTooLarge, Message: fmt.Sprintf("original exceeds %d bytes (got at least %d)", limit, size)}
	}
	ErrInvalidEvent = func(err error) *ResizeError {
		return &ResizeError{Code: CodeInvalidEvent, Message: "event body could not be parsed", Err: err}
	}
	ErrConfig = func(key string, err error) *ResizeError {
		return &ResizeError{Code: CodeConfig, Message: fmt.Sprintf("invalid value for %s", key), Err: err}
	}
)

// CodeOf returns the code of the first ResizeError in err's chain, or "".
func CodeOf(err error) string {
	var re *ResizeError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}
