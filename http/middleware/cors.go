package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/config"
)

func CORSMiddleware(config *config.EnvConfig) gin.HandlerFunc {
	var origins []string
	for _, origin := range strings.Split(config.CORS.AllowDomains, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", HackathonHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return config.CORS.GlobalDomain == "" || strings.HasSuffix(origin, config.CORS.GlobalDomain)
		}
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}
