package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
)

// findContentArea는 본문 영역을 찾습니다.
// 영역을 찾지 못하면 문서 전체를 반환합니다
func findContentArea(doc *goquery.Document) *goquery.Selection {
	for _, selector := range constants.CONTENT_SELECTORS {
		if area := doc.Find(selector).First(); area.Length() > 0 {
			return area
		}
	}
	return doc.Selection
}

// FindFirstParagraph는 본문의 첫 문단과 초반부 인용구를 찾습니다.
// 둘 다 있으면 "문단 인용구" 순으로 합쳐 반환하고, 사용된 문단 선택자를 함께 반환합니다
func FindFirstParagraph(doc *goquery.Document) (string, string) {
	contentArea := findContentArea(doc)

	var firstParagraph, quotationText, selectorUsed string

	// 1. 인용구 확인 (선택자별 처음 2개까지만)
	for _, selector := range constants.QUOTATION_SELECTORS {
		quotes := contentArea.Find(selector)
		quotes.EachWithBreak(func(i int, s *goquery.Selection) bool {
			if i >= 2 {
				return false
			}
			text := strings.TrimSpace(s.Text())
			if len([]rune(text)) > constants.MIN_PARAGRAPH_LENGTH {
				quotationText = text
				return false
			}
			return true
		})
		if quotationText != "" {
			break
		}
	}

	// 2. 일반 문단 확인
	for _, selector := range constants.PARAGRAPH_SELECTORS {
		text := strings.TrimSpace(contentArea.Find(selector).First().Text())
		if len([]rune(text)) > constants.MIN_PARAGRAPH_LENGTH {
			firstParagraph = text
			selectorUsed = selector
			break
		}
	}

	// 둘 다 있는 경우 합치고, 하나만 있으면 있는 것만 반환
	var parts []string
	if firstParagraph != "" {
		parts = append(parts, firstParagraph)
	}
	if quotationText != "" {
		parts = append(parts, quotationText)
	}

	return strings.Join(parts, " "), selectorUsed
}
