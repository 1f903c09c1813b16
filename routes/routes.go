package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wildcam/handles"
	"wildcam/services"
)

// SetupRoutes 设置路由
// staticDir 为前端目录，为空或不存在时不挂载
func SetupRoutes(r *gin.Engine, videoHandler *handles.VideoHandler, staticDir string) {
	api := r.Group("/api")
	{
		// 健康检查
		api.GET("/health", healthCheck)

		// 视频 + 标签
		api.GET("/videos", videoHandler.GetVideos)
		api.POST("/videos/:videoIndex/tags", videoHandler.SubmitTag)
		api.GET("/animals", videoHandler.GetAnimals)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var files http.Handler
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(staticDir))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			handles.ErrorResponse(c, services.NotFound("route"))
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}
