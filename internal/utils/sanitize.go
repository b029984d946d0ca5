package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// 用户自由文本（心语、昵称、简介）都是纯文本，标签一律剥掉
var strictPolicy = bluemonday.StrictPolicy()

// CleanText 剥掉 HTML 标签并去除首尾空白
func CleanText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
