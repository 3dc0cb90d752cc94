package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/dto"
)

// MsgInternalServerError is the only detail a client sees about a failure
const MsgInternalServerError = "Internal server error."

// Recovery turns a panic into the 500 error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[recovery] %s panic: %v", GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: MsgInternalServerError})
	})
}
