package utils

import (
	"crypto/rand"
	"strings"
)

const publicIDPrefix = "CIN_"

// 去掉易混淆的 0/O、1/I
const publicIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GeneratePublicID 生成 CIN_XXXXXX 形式的公开 ID，注册时使用。
// 唯一性由 users.public_id 的唯一索引兜底，冲突时调用方重新生成。
func GeneratePublicID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 基本不会失败，失败则退回固定填充再靠唯一索引拦截
		return publicIDPrefix + "AAAAAA"
	}
	var sb strings.Builder
	sb.WriteString(publicIDPrefix)
	for _, b := range buf {
		sb.WriteByte(publicIDAlphabet[int(b)%len(publicIDAlphabet)])
	}
	return sb.String()
}

// NormalizePublicID 与客户端输入框行为保持一致：去首尾空白、转大写、空格转下划线
func NormalizePublicID(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}
