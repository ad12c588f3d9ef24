package middleware

import (
	"compress/gzip"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/models"
)

// GzipDecompress replaces a gzip-encoded request body with its decompressed
// stream. It is passed to gin-contrib/gzip via WithDecompressFn and answers a
// body without a valid gzip header with a JSON 400.
func GzipDecompress(c *gin.Context) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return
	}

	reader, err := gzip.NewReader(c.Request.Body)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid gzip body",
		})
		return
	}

	c.Request.Header.Del("Content-Encoding")
	c.Request.Header.Del("Content-Length")
	c.Request.ContentLength = -1
	c.Request.Body = reader
}
