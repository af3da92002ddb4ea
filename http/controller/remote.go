package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/utils"
)

// GetConnectionInfo serves the guacamole connection parameters of the
// caller's running environment named by the "name" query parameter.
func (ctrl *Controller) GetConnectionInfo(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	info, err := ctrl.Service.Broker.GetConnectionInfo(c.Request.Context(), userID, c.Query("name"))
	if err != nil {
		utils.JSONError(c, err, "Failed to load connection info")
		return
	}
	utils.JSON200(c, info)
}
