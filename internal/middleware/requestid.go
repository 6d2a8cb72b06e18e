package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/uni-verse/universe-backend/internal/requestdata"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID, carried in the context and echoed in
// the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		rd := &requestdata.RequestData{RequestID: id}
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		c.Header(requestIDHeader, id.String())
		c.Next()
	}
}
