package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers every service route on r.
func RegisterRoutes(r gin.IRouter, s *Server) {
	r.GET("/graph-info", s.HandleGraphInfo)
	r.POST("/load-graph", s.HandleLoadGraph)
	r.POST("/reload-graph", s.HandleReloadGraph)
	r.GET("/get-node/:node", s.HandleGetNode)
	r.GET("/get-edge/:u/:v", s.HandleGetEdge)
	r.POST("/find-path", s.HandleFindPath)

	r.GET("/healthz", s.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
}
