package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/http/controller"
	middlewares "github.com/tnqbao/gau-hackathon-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}
	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api/v1")
	{
		publicRoutes := apiRoutes.Group("/")
		publicRoutes.Use(middles.OptionalAuthMiddleware, middles.HackathonMiddleware)
		{
			publicRoutes.GET("/hackathon/list", ctrl.ListHackathons)
			publicRoutes.GET("/hackathon", ctrl.GetHackathon)
			publicRoutes.GET("/hackathon/checkname", ctrl.CheckHackathonName)
			publicRoutes.GET("/hackathon/stat", ctrl.GetHackathonStat)
			publicRoutes.GET("/hackathon/tags", ctrl.GetDistinctTags)
			publicRoutes.GET("/hackathon/organizer/:id", ctrl.GetOrganizer)
		}

		userRoutes := apiRoutes.Group("/")
		userRoutes.Use(middles.AuthMiddleware, middles.HackathonMiddleware)
		{
			userRoutes.POST("/hackathon", ctrl.CreateHackathon)
			userRoutes.POST("/hackathon/like", ctrl.LikeHackathon)
			userRoutes.DELETE("/hackathon/like", ctrl.UnlikeHackathon)
			userRoutes.GET("/guacamole/connection", ctrl.GetConnectionInfo)
		}

		adminRoutes := apiRoutes.Group("/admin")
		adminRoutes.Use(middles.AuthMiddleware, middles.HackathonMiddleware, middles.AdminMiddleware)
		{
			hackathonRoutes := adminRoutes.Group("/hackathon")
			{
				hackathonRoutes.PUT("", ctrl.UpdateHackathon)
				hackathonRoutes.GET("/config", ctrl.GetHackathonConfigs)
				hackathonRoutes.POST("/config", ctrl.SetHackathonConfigs)
				hackathonRoutes.DELETE("/config", ctrl.DeleteHackathonConfig)
				hackathonRoutes.PUT("/tags", ctrl.SetHackathonTags)
				hackathonRoutes.POST("/organizer", ctrl.CreateOrganizer)
				hackathonRoutes.PUT("/organizer", ctrl.UpdateOrganizer)
				hackathonRoutes.DELETE("/organizer", ctrl.DeleteOrganizer)
			}

			templateRoutes := adminRoutes.Group("/template")
			{
				templateRoutes.GET("/list", ctrl.ListTemplates)
				templateRoutes.GET("/:id", ctrl.GetTemplate)
				templateRoutes.GET("/:id/operations", ctrl.GetTemplateOperations)
				templateRoutes.POST("", ctrl.CreateTemplate)
				templateRoutes.PUT("", ctrl.UpdateTemplate)
				templateRoutes.DELETE("/:id", ctrl.DeleteTemplate)
				templateRoutes.POST("/pull_image", ctrl.PullImage)
			}

			adminRoutes.POST("/azure/cloud_service", ctrl.EnsureCloudService)
		}
	}
	return r
}
