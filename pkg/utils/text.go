package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var hangulRegex = regexp.MustCompile(`[가-힣]{2,}`)

// NormalizeText는 유니코드 NFC 정규화를 적용하고 모든 공백을 제거합니다.
// OCR 결과나 블로그 본문처럼 자모 분리/공백 삽입이 흔한 텍스트를
// 키워드 매칭 전에 같은 형태로 맞추기 위해 사용합니다
func NormalizeText(text string) string {
	normalized := norm.NFC.String(text)

	var sb strings.Builder
	sb.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// HasKoreanText는 텍스트에 2자 이상의 연속된 한글이 있는지 확인합니다
func HasKoreanText(text string) bool {
	return hangulRegex.MatchString(text)
}
