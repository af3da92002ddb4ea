package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/http/controller/dto"
	"github.com/tnqbao/gau-hackathon-service/service/template"
	"github.com/tnqbao/gau-hackathon-service/utils"
)

func (ctrl *Controller) ListTemplates(c *gin.Context) {
	templates, err := ctrl.Service.Templates.List(c.Request.Context(), utils.ScopeFromContext(c))
	if err != nil {
		utils.JSONError(c, err, "Failed to list templates")
		return
	}
	utils.JSON200(c, templates)
}

func (ctrl *Controller) GetTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid template id")
		return
	}

	tpl, err := ctrl.Service.Templates.Get(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err, "Failed to load template")
		return
	}
	utils.JSON200(c, tpl)
}

// GetTemplateOperations returns the provisioning audit trail of a template,
// oldest first.
func (ctrl *Controller) GetTemplateOperations(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid template id")
		return
	}

	if _, err := ctrl.Service.Templates.Get(ctx, id); err != nil {
		utils.JSONError(c, err, "Failed to load template")
		return
	}

	operations, err := ctrl.Repository.UserOperationRepo.FindByTemplateID(id)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Template] Failed to load operations of %s: %v", id, err)
		utils.JSON500(c, "Failed to load template operations")
		return
	}
	utils.JSON200(c, operations)
}

func (ctrl *Controller) CreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	var req template.CreateArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Template] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	tpl, err := ctrl.Service.Templates.Create(ctx, utils.ScopeFromContext(c), req)
	if err != nil {
		utils.JSONError(c, err, "Failed to create template")
		return
	}
	utils.JSON200(c, tpl)
}

func (ctrl *Controller) UpdateTemplate(c *gin.Context) {
	var req template.UpdateArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	tpl, err := ctrl.Service.Templates.Update(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, err, "Failed to update template")
		return
	}
	utils.JSON200(c, tpl)
}

func (ctrl *Controller) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid template id")
		return
	}

	if err := ctrl.Service.Templates.Delete(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err, "Failed to delete template")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}

func (ctrl *Controller) PullImage(c *gin.Context) {
	var req dto.PullImageRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	scheduled, err := ctrl.Service.Templates.PullImages(c.Request.Context(), utils.ScopeFromContext(c), req.Image)
	if err != nil {
		utils.JSONError(c, err, "Failed to schedule image pull")
		return
	}
	utils.JSON200(c, dto.PullImageResponseDTO{Image: req.Image, Scheduled: scheduled})
}
