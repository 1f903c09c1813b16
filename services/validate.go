package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const maxTextLength = 100

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator 单例校验器（缓存结构体信息，并发安全）
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// tagLimits 标签文本长度限制
type tagLimits struct {
	Name          string `validate:"max=100"`
	ContributedBy string `validate:"omitempty,max=100"`
}

// checkLimits 长度校验，返回第一个失败字段对应的错误
func checkLimits(name, contributedBy string) error {
	err := GetValidator().Struct(tagLimits{Name: name, ContributedBy: contributedBy})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ValidationError("invalid tag")
	}
	switch fieldErrs[0].Field() {
	case "Name":
		return ValidationError("name too long")
	case "ContributedBy":
		return ValidationError("contributedBy too long")
	default:
		return ValidationError("invalid tag")
	}
}

// ParseTimestamp 解析时间戳：整数（JSON 数字或十进制字符串），且 >= 0
func ParseTimestamp(v any) (int, bool) {
	switch ts := v.(type) {
	case float64:
		if ts != math.Trunc(ts) || ts < 0 || ts > math.MaxInt32 {
			return 0, false
		}
		return int(ts), true
	case json.Number:
		return parseIntString(ts.String())
	case string:
		return parseIntString(strings.TrimSpace(ts))
	case int:
		if ts < 0 || ts > math.MaxInt32 {
			return 0, false
		}
		return ts, true
	case int64:
		if ts < 0 || ts > math.MaxInt32 {
			return 0, false
		}
		return int(ts), true
	default:
		return 0, false
	}
}

func parseIntString(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}
