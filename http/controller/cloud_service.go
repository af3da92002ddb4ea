package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/http/controller/dto"
	"github.com/tnqbao/gau-hackathon-service/service/cloudservice"
	"github.com/tnqbao/gau-hackathon-service/utils"
)

func (ctrl *Controller) EnsureCloudService(c *gin.Context) {
	ctx := c.Request.Context()
	if ctrl.Service.Provisioner == nil {
		utils.JSON412(c, "Azure is not configured")
		return
	}

	var req dto.CloudServiceRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	tpl, err := ctrl.Service.Templates.Get(ctx, uuid.MustParse(req.TemplateID))
	if err != nil {
		utils.JSONError(c, err, "Failed to load template")
		return
	}

	location := req.Location
	if location == "" {
		location = ctrl.Config.EnvConfig.Azure.Location
	}
	label := req.Label
	if label == "" {
		label = req.ServiceName
	}

	err = ctrl.Service.Provisioner.Ensure(ctx, tpl, cloudservice.Descriptor{
		ServiceName: req.ServiceName,
		Label:       label,
		Location:    location,
	})
	if err != nil {
		utils.JSONError(c, err, "Failed to provision cloud service")
		return
	}
	utils.JSON200(c, gin.H{"service_name": req.ServiceName, "status": "RUNNING"})
}
