package handles

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wildcam/models"
	"wildcam/services"
)

// VideoHandler 视频和标签API
type VideoHandler struct {
	svc *services.VideoService
}

// NewVideoHandler 创建处理器
func NewVideoHandler(svc *services.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// GetVideos 获取合并后的视频列表
// GET /api/videos?animal=xxx
func (h *VideoHandler) GetVideos(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		videos []models.MergedVideo
		err    error
	)
	if animal := c.Query("animal"); animal != "" {
		videos, err = h.svc.FilterByAnimal(ctx, animal)
	} else {
		videos, err = h.svc.GetMergedVideos(ctx)
	}
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos": videos,
	})
}

// submitTagRequest 请求体；字段类型由服务层校验，非字符串的 name 按缺失处理
type submitTagRequest struct {
	Name          any `json:"name"`
	Timestamp     any `json:"timestamp"`
	ContributedBy any `json:"contributedBy"`
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

// SubmitTag 为视频添加用户标签
// POST /api/videos/:videoIndex/tags
func (h *VideoHandler) SubmitTag(c *gin.Context) {
	var req submitTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, services.BadRequest("invalid request body"))
		return
	}

	// 非数字的索引不可能对应任何视频，交给服务层按 NotFound 处理
	videoIndex, err := strconv.Atoi(c.Param("videoIndex"))
	if err != nil {
		videoIndex = -1
	}

	tag, err := h.svc.SubmitTag(c.Request.Context(), services.SubmitTagInput{
		VideoIndex:    videoIndex,
		Name:          stringField(req.Name),
		Timestamp:     req.Timestamp,
		ContributedBy: stringField(req.ContributedBy),
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tag":     tag,
	})
}

// GetAnimals 所有动物名称（用于筛选按钮）
// GET /api/animals
func (h *VideoHandler) GetAnimals(c *gin.Context) {
	animals, err := h.svc.ListAnimals(c.Request.Context())
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"animals": animals,
	})
}
