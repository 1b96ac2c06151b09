package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yi-nology/campus_inventory/biz/handler"
	"github.com/yi-nology/campus_inventory/biz/handler/version"
	"github.com/yi-nology/campus_inventory/pkg/config"
)

// RegisterInventoryRoutes configures HTTP routes for the inventory APIs.
func RegisterInventoryRoutes(r *server.Hertz, h *handler.InventoryHandler) {
	if h == nil {
		return
	}

	v1 := r.Group("/api/v1")

	ref := v1.Group("/reference")
	ref.GET("/sites", h.ListSites)
	ref.GET("/sites/:site/buildings", h.ListBuildings)
	ref.POST("/refresh", h.RefreshReference)

	v1.GET("/vocabulary", h.GetVocabulary)
	v1.GET("/dashboard", h.GetDashboard)

	assets := v1.Group("/assets")
	assets.POST("", h.SubmitAsset)
	assets.GET("", h.ListAssets)
	assets.GET("/search", h.SearchAssets)
	assets.POST("/refresh", h.RefreshAssets)
	assets.POST("/export", h.ExportAssets)
	v1.GET("/exports/:fileID/:fileName", h.DownloadExport)

	v1.GET("/version", version.GetVersion)

	r.GET("/", handler.Index)
	r.GET("/ping", handler.Ping)
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func RegisterMetricsRoute(r *server.Hertz, cfg config.MetricsConfig) {
	if !cfg.Enabled {
		return
	}
	r.GET(cfg.Path, adaptor.HertzHandler(promhttp.Handler()))
}
