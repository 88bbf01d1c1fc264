package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the wire format shared by every endpoint:
// {"status":"success"|"error","message":...,"details":...}.
// Register and login additionally return a top-level token.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Token   string `json:"token,omitempty"`
}

func Success(c *gin.Context, code int, message string, details any) {
	c.JSON(code, Envelope{Status: "success", Message: message, Details: details})
}

func SuccessWithToken(c *gin.Context, code int, message string, token string) {
	c.JSON(code, Envelope{Status: "success", Message: message, Token: token})
}

func Error(c *gin.Context, code int, message string, details any) {
	c.JSON(code, Envelope{Status: "error", Message: message, Details: details})
}

// AbortError writes the error envelope and stops the handler chain.
// Used by middleware so handlers never run with a rejected request.
func AbortError(c *gin.Context, code int, message string, details any) {
	c.AbortWithStatusJSON(code, Envelope{Status: "error", Message: message, Details: details})
}
