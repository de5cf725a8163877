package bridge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"
)

// ErrDecode marks a payload that could not be decompressed.
var ErrDecode = errors.New("decode payload")

// errTooLarge is wrapped in ErrDecode when a stream inflates past the limit.
var errTooLarge = errors.New("decompressed payload exceeds limit")

// readBody reads exactly Content-Length bytes. An unknown or negative length
// reads nothing.
func readBody(r *http.Request) ([]byte, error) {
	n := r.ContentLength
	if n <= 0 || r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, n))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// discardBody drains up to Content-Length bytes so the connection can be reused.
func discardBody(r *http.Request) int64 {
	if r.ContentLength <= 0 || r.Body == nil {
		return 0
	}
	n, _ := io.Copy(io.Discard, io.LimitReader(r.Body, r.ContentLength))
	return n
}

func isGzip(r *http.Request) bool {
	return r.Header.Get("Content-Encoding") == "gzip"
}

// gunzip inflates one or more concatenated gzip members. An empty input
// yields an empty payload. limit <= 0 disables the size cap.
func gunzip(body []byte, limit int64) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer zr.Close()

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, limit+1)
	}
	out, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if limit > 0 && int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %w (%d bytes)", ErrDecode, errTooLarge, limit)
	}
	return out, nil
}
