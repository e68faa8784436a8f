// fileutils.go
package fileutils

import (
	"bytes"
	"fmt"
	"io"
)

// ErrTooLarge is returned by ReadLimited when the input does not fit in limit bytes.
var ErrTooLarge = fmt.Errorf("input exceeds size limit")

// ReadLimited reads r fully into memory, failing once more than limit bytes arrive.
// A non-positive limit disables the check.
func ReadLimited(r io.Reader, limit int64, sizeHint int64) ([]byte, error) {
	var buf bytes.Buffer
	if sizeHint > 0 && (limit <= 0 || sizeHint <= limit) {
		buf.Grow(int(sizeHint))
	}

	if limit <= 0 {
		if _, err := io.Copy(&buf, r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	// one extra byte tells "exactly limit" apart from "more than limit"
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, ErrTooLarge
	}
	return buf.Bytes(), nil
}
