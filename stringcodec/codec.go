// Package stringcodec is the zlib+base64 compress/decompress helper exposed
// by the string utility endpoints.
package stringcodec

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"errors"
	"io"
	"math"
)

// ErrDecode is returned when the input is not valid base64-encoded zlib data.
var ErrDecode = errors.New("invalid compressed data")

// Result describes one compression, sizes in bytes.
type Result struct {
	Data             string
	OriginalSize     int
	CompressedSize   int
	CompressionRatio float64
}

// Compress deflates the text and base64-encodes the result for transport.
// The ratio is the percentage size reduction, 0 for empty input.
func Compress(text string) (Result, error) {
	original := []byte(text)

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(original); err != nil {
		w.Close()
		return Result{}, err
	}
	if err := w.Close(); err != nil {
		return Result{}, err
	}
	compressed := buf.Bytes()

	ratio := 0.0
	if len(original) > 0 {
		ratio = float64(len(original)-len(compressed)) / float64(len(original)) * 100
		ratio = math.Round(ratio*100) / 100
	}

	return Result{
		Data:             base64.StdEncoding.EncodeToString(compressed),
		OriginalSize:     len(original),
		CompressedSize:   len(compressed),
		CompressionRatio: ratio,
	}, nil
}

// Decompress reverses Compress: base64 decode, then inflate.
func Decompress(encoded string) (string, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrDecode
	}
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", ErrDecode
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return "", ErrDecode
	}
	return string(decompressed), nil
}
