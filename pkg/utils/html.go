package utils

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// RemoveHTMLTags는 문자열에서 HTML 태그를 제거합니다
func RemoveHTMLTags(s string) string {
	noTags := htmlTagRegex.ReplaceAllString(s, "")

	// HTML 엔티티 처리
	noTags = strings.ReplaceAll(noTags, "&lt;", "<")
	noTags = strings.ReplaceAll(noTags, "&gt;", ">")
	noTags = strings.ReplaceAll(noTags, "&amp;", "&")
	noTags = strings.ReplaceAll(noTags, "&quot;", "\"")
	noTags = strings.ReplaceAll(noTags, "&#39;", "'")

	// 여러 공백 정리
	noTags = multiSpaceRegex.ReplaceAllString(noTags, " ")

	return strings.TrimSpace(noTags)
}
