package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/http/controller"
)

type Middlewares struct {
	CORSMiddleware         gin.HandlerFunc
	AuthMiddleware         gin.HandlerFunc
	OptionalAuthMiddleware gin.HandlerFunc
	HackathonMiddleware    gin.HandlerFunc
	AdminMiddleware        gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	return &Middlewares{
		CORSMiddleware:         CORSMiddleware(ctrl.Config.EnvConfig),
		AuthMiddleware:         AuthMiddleware(ctrl.Config.EnvConfig),
		OptionalAuthMiddleware: OptionalAuthMiddleware(ctrl.Config.EnvConfig),
		HackathonMiddleware:    HackathonMiddleware(ctrl.Service.Hackathons),
		AdminMiddleware:        AdminMiddleware(ctrl.Repository.AdminHackathonRelRepo),
	}, nil
}
