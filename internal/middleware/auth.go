package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/vespulse/internal/domain/dto"
)

// AuthHeader is the header carrying the dashboard's shared secret.
const AuthHeader = "X-API-Key"

// TokenAuth gates the API behind a single shared secret, the server-side
// counterpart of the dashboard's password screen. The token is accepted
// either in the X-API-Key header or as "Bearer <token>" in Authorization.
//
// An empty configured token disables the gate entirely (local development).
func TokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		presented := c.GetHeader(AuthHeader)
		if presented == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				presented = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid or missing API key", nil))
			return
		}

		c.Next()
	}
}
