package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
)

const hackathonKey = "hackathon"

func SetHackathon(c *gin.Context, hackathon *entity.Hackathon) {
	c.Set(hackathonKey, hackathon)
}

func HackathonFromContext(c *gin.Context) *entity.Hackathon {
	value, ok := c.Get(hackathonKey)
	if !ok {
		return nil
	}
	h, _ := value.(*entity.Hackathon)
	return h
}

// ScopeFromContext builds the request scope from what the auth and hackathon
// middlewares injected.
func ScopeFromContext(c *gin.Context) service.Scope {
	userID, _ := UserIDFromContext(c)
	return service.NewScope(userID, HackathonFromContext(c))
}
