package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
)

// Keys under which the verified token fields are stored in the gin context.
const (
	ctxKeySubject = "auth.subject"
	ctxKeyTokenID = "auth.jti"
)

const (
	msgMissingToken = "Missing token!"
	msgInvalidToken = "Invalid or expired token!"
	msgTokenRevoked = "Token has been revoked!"
)

// requireToken guards an endpoint: it reads the raw token from the
// configured header (no scheme prefix), verifies signature and expiry, and
// consults the revocation registry. On any failure the request is aborted
// with 401 before the handler runs.
func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(s.config.JWTHeaderName)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Message: msgMissingToken})
			return
		}

		details, err := auth.ParseToken(tokenString, []byte(s.config.JWTSecretKey))
		if err != nil {
			s.logger.Warn(c.Request.Context(), "token rejected", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Message: msgInvalidToken})
			return
		}

		revoked, err := s.revocations.IsRevoked(c.Request.Context(), details.ID)
		if err != nil {
			s.logger.Error(c.Request.Context(), "error checking revocation", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, newInternalError())
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Message: msgTokenRevoked})
			return
		}

		c.Set(ctxKeySubject, details.Subject)
		c.Set(ctxKeyTokenID, details.ID)
		c.Next()
	}
}
