package models

import "time"

// TagRow 用户标签账本中的一行（只追加，不更新、不删除）
type TagRow struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	VideoIndex    int     `gorm:"index;not null" json:"video_index"` // 目录位置（外键）
	Name          string  `gorm:"size:200;not null" json:"name"`
	Timestamp     int     `gorm:"not null" json:"timestamp"`
	ContributedBy *string `gorm:"size:200" json:"contributed_by,omitempty"`
}

// TableName 指定表名
func (TagRow) TableName() string {
	return "user_tags"
}

// Tag 转换为对外的标签结构
func (r TagRow) Tag() Tag {
	t := Tag{
		Name:          r.Name,
		Timestamp:     r.Timestamp,
		UserSuggested: true,
	}
	if r.ContributedBy != nil {
		t.ContributedBy = *r.ContributedBy
	}
	return t
}
