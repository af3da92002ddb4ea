package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tnqbao/gau-hackathon-service/config"
	"github.com/tnqbao/gau-hackathon-service/utils"
)

func AuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			tokenStr = c.Query("access_token")
		}

		if tokenStr == "" {
			utils.JSON401(c, "Authorization token is required")
			c.Abort()
			return
		}

		if err := authenticate(c, tokenStr, config); err != nil {
			utils.JSON401(c, err.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware injects the user when a valid token is present and
// lets anonymous requests through.
func OptionalAuthMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := utils.ExtractToken(c); tokenStr != "" {
			_ = authenticate(c, tokenStr, config)
		}
		c.Next()
	}
}

type authError string

func (e authError) Error() string { return string(e) }

func authenticate(c *gin.Context, tokenStr string, config *config.EnvConfig) error {
	parsedToken, err := utils.ParseToken(tokenStr, config)
	if err != nil || !parsedToken.Valid {
		return authError("Invalid or expired token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return authError("Invalid token claims")
	}
	if err := utils.InjectClaimsToContext(c, claims); err != nil {
		return authError("Invalid claims")
	}
	return nil
}
