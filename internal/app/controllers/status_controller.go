package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contribtrack/internal/app/models/dto"
)

// ServiceName is reported by the status endpoint
const ServiceName = "contribtrack"

// Status reports that the API is up
// @Summary API status
// @Tags status
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatusData} "Status"
// @Router /status [get]
func Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StatusData{
		Service:   ServiceName,
		Timestamp: time.Now().UTC(),
	}, ""))
}

// Ping is a bare health probe
func Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
