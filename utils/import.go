package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"wildcam/logging"
	"wildcam/models"
	"wildcam/store"
)

// ImportResult 导入统计
type ImportResult struct {
	Videos   int
	Imported int
	Skipped  int            // 名称为空或时间戳为负的标签
	Catalog  []models.Video // 去掉用户标签后的目录
}

// ImportLegacyTags 从旧版 videos.json（用户标签直接写在文件里）导入用户标签到账本
// 维护者标签原样保留在 Catalog 中；按视频顺序、文件内顺序追加
func ImportLegacyTags(ctx context.Context, data []byte, ledger store.Ledger) (*ImportResult, error) {
	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析旧版文件失败: %w", err)
	}
	if doc.Videos == nil {
		return nil, fmt.Errorf("旧版文件缺少 videos 数组")
	}

	result := &ImportResult{
		Videos:  len(doc.Videos),
		Catalog: make([]models.Video, len(doc.Videos)),
	}

	for i, video := range doc.Videos {
		curated := make([]models.Tag, 0, len(video.CuratedTags))
		for _, tag := range video.CuratedTags {
			if !tag.UserSuggested {
				curated = append(curated, tag)
				continue
			}

			name := strings.TrimSpace(tag.Name)
			if name == "" || tag.Timestamp < 0 {
				result.Skipped++
				continue
			}

			row := models.TagRow{
				VideoIndex: i,
				Name:       name,
				Timestamp:  tag.Timestamp,
			}
			if by := strings.TrimSpace(tag.ContributedBy); by != "" {
				row.ContributedBy = &by
			}
			if err := ledger.Append(ctx, &row); err != nil {
				return result, fmt.Errorf("导入第 %d 个视频的标签失败: %w", i, err)
			}
			result.Imported++
		}

		video.CuratedTags = curated
		result.Catalog[i] = video
	}

	logging.Info().
		Int("videos", result.Videos).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("旧版标签导入完成")
	return result, nil
}

// WriteCatalog 保存目录到 JSON 文件
func WriteCatalog(path string, videos []models.Video) error {
	data, err := json.MarshalIndent(models.CatalogDocument{Videos: videos}, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON编码失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	return nil
}
