package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches Gin to release mode outside development so request
// logging stays with the request-id middleware only.
func SetGinMode(env string) {
	switch env {
	case "production", "release":
		gin.SetMode(gin.ReleaseMode)
	}
}
