package handlers

import (
	"net/http"

	"github.com/SscSPs/voucher_management_app/internal/dto"
	"github.com/SscSPs/voucher_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

type homeHandler struct {
	appName    string
	appVersion string
	store      string
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", App: h.appName, Version: h.appVersion})
}

// getHealth godoc
// @Summary Liveness check.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *homeHandler) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Store: h.store, Version: h.appVersion})
}

// registerHomeRoutes registers '/' and '/health'
func registerHomeRoutes(r *gin.Engine, cfg *config.Config) {
	h := &homeHandler{appName: cfg.AppName, appVersion: cfg.AppVersion, store: cfg.StoreDriver}
	r.GET("/", h.getHome)
	r.GET("/health", h.getHealth)
}
