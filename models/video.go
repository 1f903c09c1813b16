package models

// Tag 动物标签（某个时间点出现的物种）
type Tag struct {
	Name          string `json:"name"`
	Timestamp     int    `json:"timestamp"`               // 视频内秒数
	UserSuggested bool   `json:"userSuggested"`           // false: 维护者标注, true: 用户提交
	ContributedBy string `json:"contributedBy,omitempty"` // 仅用户标签
}

// Video 目录中的视频（身份 = 在目录中的位置）
type Video struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"` // 录制日期，仅用于展示
	CuratedTags []Tag  `json:"animalTags"`
}

// CatalogDocument videos.json 的文件结构
type CatalogDocument struct {
	Videos []Video `json:"videos"`
}

// MergedVideo 合并视图中的视频（目录 + 用户标签），每次请求重新构建
type MergedVideo struct {
	Index       int    `json:"index"`
	URL         string `json:"url"`
	EmbedID     string `json:"embedId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	AnimalTags  []Tag  `json:"animalTags"`
}

// HasAnimal 是否包含指定名称的标签（精确匹配）
func (v MergedVideo) HasAnimal(name string) bool {
	for _, t := range v.AnimalTags {
		if t.Name == name {
			return true
		}
	}
	return false
}
