package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/backend/stringcodec"
)

// Text is deliberately not required: compressing the empty string is valid
// and reports a ratio of 0.
type CompressRequest struct {
	Text string `json:"text"`
}

type DecompressRequest struct {
	CompressedData string `json:"compressed_data" binding:"required"`
}

// CompressString handles POST /api/compress-string
func (h *Handler) CompressString(c *gin.Context) {
	var req CompressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := stringcodec.Compress(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Compression failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"original_text":     req.Text,
		"compressed_data":   result.Data,
		"original_size":     result.OriginalSize,
		"compressed_size":   result.CompressedSize,
		"compression_ratio": result.CompressionRatio,
	})
}

// DecompressString handles POST /api/decompress-string
func (h *Handler) DecompressString(c *gin.Context) {
	var req DecompressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	text, err := stringcodec.Decompress(req.CompressedData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decompression failed: invalid compressed data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"decompressed_text": text,
		"original_size":     len(text),
	})
}
