package services

import (
	"context"
	"strings"

	"wildcam/logging"
	"wildcam/metrics"
	"wildcam/models"
)

// SubmitTagInput 用户提交的标签
// Timestamp 保留请求中的原始值，由 SubmitTag 解析
type SubmitTagInput struct {
	VideoIndex    int
	Name          string
	Timestamp     any
	ContributedBy string
}

// SubmitTag 校验并追加一条用户标签
// 校验顺序：名称 -> 时间戳 -> 视频索引 -> 长度限制；任一失败都不会写入账本
func (vs *VideoService) SubmitTag(ctx context.Context, in SubmitTagInput) (models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		metrics.RecordSubmission("invalid")
		return models.Tag{}, ValidationError("missing name")
	}

	timestamp, ok := ParseTimestamp(in.Timestamp)
	if !ok {
		metrics.RecordSubmission("invalid")
		return models.Tag{}, ValidationError("invalid timestamp")
	}

	videos, err := vs.catalog.Load(ctx)
	if err != nil {
		metrics.RecordSubmission("error")
		return models.Tag{}, err
	}
	if in.VideoIndex < 0 || in.VideoIndex >= len(videos) {
		metrics.RecordSubmission("not_found")
		return models.Tag{}, NotFound("video")
	}

	contributedBy := strings.TrimSpace(in.ContributedBy)
	if err := checkLimits(name, contributedBy); err != nil {
		metrics.RecordSubmission("invalid")
		return models.Tag{}, err
	}

	row := models.TagRow{
		VideoIndex: in.VideoIndex,
		Name:       name,
		Timestamp:  timestamp,
	}
	if contributedBy != "" {
		row.ContributedBy = &contributedBy
	}

	if err := vs.ledger.Append(ctx, &row); err != nil {
		metrics.RecordSubmission("error")
		return models.Tag{}, LedgerUnavailable(err)
	}

	metrics.RecordSubmission("accepted")
	logging.Ctx(ctx).Info().
		Uint64("id", row.ID).
		Int("video_index", row.VideoIndex).
		Str("name", row.Name).
		Int("timestamp", row.Timestamp).
		Msg("新增用户标签")

	return row.Tag(), nil
}
