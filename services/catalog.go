package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"wildcam/models"
)

// Catalog 只读的视频目录
type Catalog interface {
	Load(ctx context.Context) ([]models.Video, error)
}

// FileCatalog 从 videos.json 读取目录
// 每次调用都重新读取文件，维护者修改后无需重启
type FileCatalog struct {
	path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{path: path}
}

// Load 读取并解析目录，文件缺失或格式错误返回 CatalogUnavailable
func (fc *FileCatalog) Load(ctx context.Context) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, CatalogUnavailable(err)
	}

	data, err := os.ReadFile(fc.path)
	if err != nil {
		return nil, CatalogUnavailable(fmt.Errorf("读取目录文件失败: %w", err))
	}

	videos, err := ParseCatalog(data)
	if err != nil {
		return nil, CatalogUnavailable(err)
	}
	return videos, nil
}

// ParseCatalog 解析目录文档，必须包含 videos 数组
func ParseCatalog(data []byte) ([]models.Video, error) {
	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析目录文件失败: %w", err)
	}
	if doc.Videos == nil {
		return nil, errors.New("目录文件缺少 videos 数组")
	}
	return doc.Videos, nil
}
