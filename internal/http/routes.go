package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// Register registers routes to the given router group.
	Register(rg *gin.RouterGroup)
}
