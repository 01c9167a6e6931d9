package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const credentialKey = "completion_credential"

// Credential extracts the caller-supplied completion API key from the
// Authorization header and stashes it in the request context. It does
// not reject requests itself; the chat flow decides whether a missing
// key is an error.
func Credential() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			key := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if key != "" {
				c.Set(credentialKey, key)
			}
		}
		c.Next()
	}
}

// CredentialFrom returns the completion API key stored by Credential,
// or an empty string if the caller supplied none.
func CredentialFrom(c *gin.Context) string {
	key, _ := c.Get(credentialKey)
	s, _ := key.(string)
	return s
}
