package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/http/controller/dto"
	"github.com/tnqbao/gau-hackathon-service/repository"
	"github.com/tnqbao/gau-hackathon-service/service/hackathon"
	"github.com/tnqbao/gau-hackathon-service/utils"
)

func optionalUserID(c *gin.Context) *uuid.UUID {
	if userID, ok := utils.UserIDFromContext(c); ok {
		return &userID
	}
	return nil
}

// requireHackathon writes a 400 and returns nil when the request names no
// hackathon.
func requireHackathon(c *gin.Context) *entity.Hackathon {
	h := utils.HackathonFromContext(c)
	if h == nil {
		utils.JSON400(c, "hackathon_name header is required")
	}
	return h
}

func (ctrl *Controller) ListHackathons(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	filter := repository.HackathonFilter{
		Page:    page,
		PerPage: perPage,
		OrderBy: c.DefaultQuery("order_by", "create_time"),
		Status:  c.Query("status"),
		Name:    c.Query("name"),
	}

	result, err := ctrl.Service.Hackathons.List(ctx, filter, optionalUserID(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to list hackathons: %v", err)
		utils.JSONError(c, err, "Failed to list hackathons")
		return
	}
	utils.JSON200(c, result)
}

func (ctrl *Controller) GetHackathon(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}
	ctx := c.Request.Context()

	detail, err := ctrl.Service.Hackathons.GetDetail(ctx, h, optionalUserID(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to load detail of %s: %v", h.Name, err)
		utils.JSONError(c, err, "Failed to load hackathon")
		return
	}
	utils.JSON200(c, detail)
}

func (ctrl *Controller) CheckHackathonName(c *gin.Context) {
	exists, err := ctrl.Service.Hackathons.IsNameExisted(c.Request.Context(), c.Query("name"))
	if err != nil {
		utils.JSONError(c, err, "Failed to check hackathon name")
		return
	}
	utils.JSON200(c, gin.H{"existed": exists})
}

func (ctrl *Controller) GetHackathonStat(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	stat, err := ctrl.Service.Hackathons.GetStat(c.Request.Context(), h)
	if err != nil {
		utils.JSONError(c, err, "Failed to load hackathon stat")
		return
	}
	utils.JSON200(c, stat)
}

func (ctrl *Controller) CreateHackathon(c *gin.Context) {
	ctx := c.Request.Context()

	var req hackathon.CreateArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Hackathon] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	h, err := ctrl.Service.Hackathons.Create(ctx, utils.ScopeFromContext(c), req)
	if err != nil {
		utils.JSONError(c, err, "Failed to create hackathon")
		return
	}
	utils.JSON200(c, h)
}

func (ctrl *Controller) UpdateHackathon(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}
	ctx := c.Request.Context()

	var req hackathon.UpdateArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	updated, err := ctrl.Service.Hackathons.Update(ctx, h, req)
	if err != nil {
		utils.JSONError(c, err, "Failed to update hackathon")
		return
	}
	utils.JSON200(c, updated)
}

func (ctrl *Controller) LikeHackathon(c *gin.Context) {
	ctrl.toggleLike(c, true)
}

func (ctrl *Controller) UnlikeHackathon(c *gin.Context) {
	ctrl.toggleLike(c, false)
}

func (ctrl *Controller) toggleLike(c *gin.Context, like bool) {
	h := requireHackathon(c)
	if h == nil {
		return
	}
	ctx := c.Request.Context()
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	var err error
	if like {
		err = ctrl.Service.Hackathons.Like(ctx, userID, h)
	} else {
		err = ctrl.Service.Hackathons.Unlike(ctx, userID, h)
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Hackathon] Failed to update like of %s: %v", h.Name, err)
		utils.JSONError(c, err, "Failed to update like")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}

func (ctrl *Controller) GetHackathonConfigs(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	configs, err := ctrl.Service.Hackathons.GetAllProperties(c.Request.Context(), h)
	if err != nil {
		utils.JSONError(c, err, "Failed to load hackathon configs")
		return
	}
	utils.JSON200(c, configs)
}

func (ctrl *Controller) SetHackathonConfigs(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	var req dto.PropertiesRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	props := make([]hackathon.Property, 0, len(req.Properties))
	for _, p := range req.Properties {
		props = append(props, hackathon.Property{Key: p.Key, Value: p.Value})
	}
	if err := ctrl.Service.Hackathons.SetBasicProperty(c.Request.Context(), h, props...); err != nil {
		utils.JSONError(c, err, "Failed to save hackathon configs")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}

func (ctrl *Controller) DeleteHackathonConfig(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}
	key := c.Query("key")
	if key == "" {
		utils.JSON400(c, "key is required")
		return
	}

	if err := ctrl.Service.Hackathons.DeleteProperty(c.Request.Context(), h, key); err != nil {
		utils.JSONError(c, err, "Failed to delete hackathon config")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}

func (ctrl *Controller) GetDistinctTags(c *gin.Context) {
	tags, err := ctrl.Service.Hackathons.GetDistinctTags(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err, "Failed to list tags")
		return
	}
	utils.JSON200(c, tags)
}

func (ctrl *Controller) SetHackathonTags(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	var req dto.TagsRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if err := ctrl.Service.Hackathons.SetTags(c.Request.Context(), h, req.Tags); err != nil {
		utils.JSONError(c, err, "Failed to save tags")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}

func (ctrl *Controller) GetOrganizer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid organizer id")
		return
	}

	organizer, err := ctrl.Service.Hackathons.GetOrganizer(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, err, "Failed to load organizer")
		return
	}
	utils.JSON200(c, organizer)
}

func (ctrl *Controller) CreateOrganizer(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	var req hackathon.OrganizerArgs
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	organizer, err := ctrl.Service.Hackathons.CreateOrganizer(c.Request.Context(), h, req)
	if err != nil {
		utils.JSONError(c, err, "Failed to create organizer")
		return
	}
	utils.JSON200(c, organizer)
}

func (ctrl *Controller) UpdateOrganizer(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}

	var req dto.OrganizerRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		utils.JSON400(c, "Invalid organizer id")
		return
	}

	organizer, err := ctrl.Service.Hackathons.UpdateOrganizer(c.Request.Context(), h, hackathon.OrganizerUpdate{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Homepage:    req.Homepage,
		Logo:        req.Logo,
	})
	if err != nil {
		utils.JSONError(c, err, "Failed to update organizer")
		return
	}
	utils.JSON200(c, organizer)
}

func (ctrl *Controller) DeleteOrganizer(c *gin.Context) {
	h := requireHackathon(c)
	if h == nil {
		return
	}
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.JSON400(c, "Invalid organizer id")
		return
	}

	if err := ctrl.Service.Hackathons.DeleteOrganizer(c.Request.Context(), h, id); err != nil {
		utils.JSONError(c, err, "Failed to delete organizer")
		return
	}
	utils.JSON200(c, gin.H{"message": "ok"})
}
