package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/anamkhan-2/bzooo-webtechProject/checkout"
)

// JWTVerifier accepts a signed token whose "role" claim is "admin".
type JWTVerifier struct {
	Secret []byte
}

func (v JWTVerifier) Verify(credential string) bool {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.Secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// APIKeyVerifier compares the credential against a configured admin key.
type APIKeyVerifier struct {
	Key string
}

func (v APIKeyVerifier) Verify(credential string) bool {
	return v.Key != "" && credential == v.Key
}

// AdminOnly gates the /admin group. The credential comes from the
// Authorization header (token verifiers) or X-API-KEY (key verifiers).
func AdminOnly(verifier checkout.CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := c.GetHeader("Authorization")
		if credential == "" {
			credential = c.GetHeader("X-API-KEY")
		}
		if !checkout.IsAdmin(verifier, credential) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
