package respond

import (
	"regexp"
)

var (
	// URL 形式 DSN 内のパスワード
	dbPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// key=value 形式 DSN 内のパスワード (pgx)
	kvPasswordPattern = regexp.MustCompile(`(?i)(password=)('[^']*'|\S+)`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
