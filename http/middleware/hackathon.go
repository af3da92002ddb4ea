package middlewares

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/service"
	"github.com/tnqbao/gau-hackathon-service/utils"
)

// HackathonHeader names the hackathon a request acts on.
const HackathonHeader = "hackathon_name"

type HackathonLookup interface {
	GetByName(ctx context.Context, name string) (*entity.Hackathon, error)
}

type AdminChecker interface {
	IsAdmin(userID, hackathonID uuid.UUID) (bool, error)
}

// HackathonMiddleware loads the hackathon named by the request header. A
// request without the header continues without a hackathon.
func HackathonMiddleware(hackathons HackathonLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.GetHeader(HackathonHeader)
		if name == "" {
			name = c.Query(HackathonHeader)
		}
		if name == "" {
			c.Next()
			return
		}

		h, err := hackathons.GetByName(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				utils.JSON404(c, "hackathon "+name+" not found")
			} else {
				utils.JSON500(c, "Failed to load hackathon")
			}
			c.Abort()
			return
		}

		utils.SetHackathon(c, h)
		c.Next()
	}
}

// AdminMiddleware requires a hackathon in scope and the caller to be one of
// its admins.
func AdminMiddleware(admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := utils.HackathonFromContext(c)
		if h == nil {
			utils.JSON400(c, "hackathon_name header is required")
			c.Abort()
			return
		}
		userID, ok := utils.UserIDFromContext(c)
		if !ok {
			utils.JSON401(c, "Unauthorized: user_id not found")
			c.Abort()
			return
		}

		isAdmin, err := admins.IsAdmin(userID, h.ID)
		if err != nil {
			utils.JSON500(c, "Failed to check hackathon admin")
			c.Abort()
			return
		}
		if !isAdmin {
			utils.JSON403(c, "Only admins of "+h.Name+" may do this")
			c.Abort()
			return
		}
		c.Next()
	}
}
