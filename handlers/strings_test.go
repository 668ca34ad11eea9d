package handlers

import (
	"net/http"
	"testing"

	"github.com/salespulse/backend/stringcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressAndDecompressEndpoints(t *testing.T) {
	router := newTestRouter(fakeStore{})
	text := "hello world hello world hello world"

	rec := serve(router, postJSON(t, "/api/compress-string", map[string]string{"text": text}))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, text, body["original_text"])
	assert.Equal(t, float64(len(text)), body["original_size"])
	assert.NotEmpty(t, body["compressed_data"])

	rec = serve(router, postJSON(t, "/api/decompress-string", map[string]string{
		"compressed_data": body["compressed_data"].(string),
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	decoded := decodeBody(t, rec)
	assert.Equal(t, text, decoded["decompressed_text"])
	assert.Equal(t, float64(len(text)), decoded["original_size"])
}

func TestCompressEmptyStringRatioZero(t *testing.T) {
	router := newTestRouter(fakeStore{})

	rec := serve(router, postJSON(t, "/api/compress-string", map[string]string{"text": ""}))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["original_size"])
	assert.Equal(t, float64(0), body["compression_ratio"])
}

func TestDecompressRejectsInvalidData(t *testing.T) {
	router := newTestRouter(fakeStore{})

	rec := serve(router, postJSON(t, "/api/decompress-string", map[string]string{
		"compressed_data": "definitely-not-compressed",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecompressRequiresBody(t *testing.T) {
	router := newTestRouter(fakeStore{})

	rec := serve(router, postJSON(t, "/api/decompress-string", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStringEndpointsAgreeWithCodec(t *testing.T) {
	router := newTestRouter(fakeStore{})
	text := "round trip through the package API"

	result, err := stringcodec.Compress(text)
	require.NoError(t, err)

	rec := serve(router, postJSON(t, "/api/decompress-string", map[string]string{
		"compressed_data": result.Data,
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, text, decodeBody(t, rec)["decompressed_text"])
}
