package utils

import "regexp"

var youTubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeID 从视频链接中提取11位的 YouTube ID，无法识别返回空字符串
func YouTubeID(url string) string {
	m := youTubeIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return ""
	}
	return m[2]
}
