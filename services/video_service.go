package services

import (
	"context"
	"sort"
	"strings"

	"wildcam/logging"
	"wildcam/metrics"
	"wildcam/models"
	"wildcam/store"
	"wildcam/utils"
)

// VideoService 合并目录和用户标签，处理标签提交
type VideoService struct {
	catalog Catalog
	ledger  store.Ledger
}

// NewVideoService 创建视频服务
func NewVideoService(catalog Catalog, ledger store.Ledger) *VideoService {
	return &VideoService{
		catalog: catalog,
		ledger:  ledger,
	}
}

// GetMergedVideos 构建合并视图
// 结果长度等于目录长度；每个视频先是维护者标签，再按提交顺序追加用户标签
func (vs *VideoService) GetMergedVideos(ctx context.Context) ([]models.MergedVideo, error) {
	videos, err := vs.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := vs.ledger.All(ctx)
	if err != nil {
		return nil, LedgerUnavailable(err)
	}

	merged := make([]models.MergedVideo, len(videos))
	for i, v := range videos {
		tags := make([]models.Tag, 0, len(v.CuratedTags)+4)
		for _, t := range v.CuratedTags {
			// 目录里的标签一律视为维护者标签，旧文件残留的用户标记不生效
			t.UserSuggested = false
			t.ContributedBy = ""
			tags = append(tags, t)
		}

		merged[i] = models.MergedVideo{
			Index:       i,
			URL:         v.URL,
			EmbedID:     utils.YouTubeID(v.URL),
			Title:       v.Title,
			Description: v.Description,
			Date:        v.Date,
			AnimalTags:  tags,
		}
	}

	skipped := 0
	for _, row := range rows {
		// 目录被编辑后索引可能失效，跳过即可
		if row.VideoIndex < 0 || row.VideoIndex >= len(merged) {
			skipped++
			continue
		}
		m := &merged[row.VideoIndex]
		m.AnimalTags = append(m.AnimalTags, row.Tag())
	}

	if skipped > 0 {
		metrics.OrphanedTagsSkipped.Add(float64(skipped))
		logging.Ctx(ctx).Debug().Int("skipped", skipped).Msg("跳过了引用不存在视频的标签")
	}

	return merged, nil
}

// FilterByAnimal 只保留含有指定动物标签的视频
func (vs *VideoService) FilterByAnimal(ctx context.Context, name string) ([]models.MergedVideo, error) {
	merged, err := vs.GetMergedVideos(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.MergedVideo, 0, len(merged))
	for _, v := range merged {
		if v.HasAnimal(name) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// ListAnimals 所有出现过的动物名称（去重，忽略大小写排序）
func (vs *VideoService) ListAnimals(ctx context.Context) ([]string, error) {
	merged, err := vs.GetMergedVideos(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	animals := make([]string, 0)
	for _, v := range merged {
		for _, t := range v.AnimalTags {
			if _, ok := seen[t.Name]; ok {
				continue
			}
			seen[t.Name] = struct{}{}
			animals = append(animals, t.Name)
		}
	}

	sort.Slice(animals, func(i, j int) bool {
		a, b := strings.ToLower(animals[i]), strings.ToLower(animals[j])
		if a != b {
			return a < b
		}
		return animals[i] < animals[j]
	})
	return animals, nil
}
