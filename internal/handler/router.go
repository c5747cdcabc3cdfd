package handler

import (
	"net/http"
	"slices"
	"time"

	_ "fare-api/docs"
	"fare-api/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route of the API.
func NewRouter(fareHandler *FareHandler, geoCodeHandler *GeoCodeHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())
	if len(allowedOrigins) > 0 {
		r.Use(corsMiddleware(allowedOrigins))
	}
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", fareHandler.Home)
	r.POST("/predict", fareHandler.Predict)
	r.POST("/predict_api", fareHandler.PredictAPI)
	r.GET("/geocode", geoCodeHandler.GeoCode)

	v1 := r.Group("/api/v1")
	v1.POST("/estimate", fareHandler.Estimate)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if slices.Contains(allowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return cors.New(config)
}
