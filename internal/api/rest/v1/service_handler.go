package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the service is up
// @Summary Health status
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}

// Index describes the service and where its accounts live
// @Summary Root URL response
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, IndexResponse{
		Name:    ServiceName,
		Version: ServiceVersion,
		Paths:   baseURL(ctx) + AccountsPath,
	})
}
