package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

var styleURLRegex = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

// IsStickerDomain은 URL이 스티커/배지 호스팅 도메인인지 확인합니다
func IsStickerDomain(url string) bool {
	for _, domain := range constants.STICKER_DOMAINS {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

// IsSponsorDomain은 URL이 협찬 업체(배지 발급) 도메인인지 확인합니다
func IsSponsorDomain(url string) bool {
	for _, domain := range constants.SPONSOR_DOMAINS {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

// FindSticker는 문서에서 첫 번째 스티커/배지 이미지를 찾습니다.
// 우선순위:
//  1. 스티커 클래스 요소 내부의 img 또는 background-image
//  2. data-linkdata 속성의 JSON (네이버 블로그 특유의 구조)
//  3. 스티커 도메인 src를 가진 img 태그
//  4. 스티커 도메인 background-image를 가진 모든 요소
func FindSticker(doc *goquery.Document) *structure.SignalLocation {
	// 1. 스티커 클래스로 찾기
	for _, stickerClass := range constants.STICKER_CLASSES {
		var found *structure.SignalLocation

		doc.Find("[class*='" + stickerClass + "']").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
			// 이미지 태그 확인
			if src, exists := elem.Find("img").First().Attr("src"); exists && IsStickerDomain(src) {
				found = &structure.SignalLocation{
					Kind:    structure.SignalSticker,
					Locator: stickerClass,
					Payload: src,
					Method:  structure.ResolutionClassBased,
				}
				return false
			}

			// 배경 이미지 스타일 확인
			if style, exists := elem.Attr("style"); exists && strings.Contains(style, "background-image") {
				if url := extractStyleURL(style); url != "" && IsStickerDomain(url) {
					found = &structure.SignalLocation{
						Kind:    structure.SignalSticker,
						Locator: stickerClass,
						Payload: url,
						Method:  structure.ResolutionStyleBased,
					}
					return false
				}
			}
			return true
		})

		if found != nil {
			return found
		}
	}

	// 2. data-linkdata 속성으로 찾기
	var linkDataFound *structure.SignalLocation
	doc.Find("[data-linkdata]").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
		linkData, _ := elem.Attr("data-linkdata")
		if src := parseLinkDataSrc(linkData); src != "" && IsStickerDomain(src) {
			linkDataFound = &structure.SignalLocation{
				Kind:    structure.SignalSticker,
				Locator: "data-linkdata",
				Payload: src,
				Method:  structure.ResolutionLinkDataBased,
			}
			return false
		}
		return true
	})
	if linkDataFound != nil {
		return linkDataFound
	}

	// 3. 이미지 태그 중 스티커 도메인을 가진 것 찾기
	var imgFound *structure.SignalLocation
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if src, exists := img.Attr("src"); exists && IsStickerDomain(src) {
			imgFound = &structure.SignalLocation{
				Kind:    structure.SignalSticker,
				Locator: "img",
				Payload: src,
				Method:  structure.ResolutionImgBased,
			}
			return false
		}
		return true
	})
	if imgFound != nil {
		return imgFound
	}

	// 4. 배경 이미지 스타일을 가진 모든 요소 확인
	var styleFound *structure.SignalLocation
	doc.Find("[style*='background-image']").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
		style, _ := elem.Attr("style")
		if url := extractStyleURL(style); url != "" && IsStickerDomain(url) {
			styleFound = &structure.SignalLocation{
				Kind:    structure.SignalSticker,
				Locator: "[style]",
				Payload: url,
				Method:  structure.ResolutionStyleBased,
			}
			return false
		}
		return true
	})

	return styleFound
}

// extractStyleURL은 style 속성의 background-image에서 URL을 추출합니다
func extractStyleURL(style string) string {
	match := styleURLRegex.FindStringSubmatch(style)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// parseLinkDataSrc는 data-linkdata JSON에서 src 값을 추출합니다.
// 속성 값은 HTML 이스케이프된 경우가 있어 &quot;를 먼저 복원합니다
func parseLinkDataSrc(linkData string) string {
	if linkData == "" {
		return ""
	}

	linkData = strings.ReplaceAll(linkData, "&quot;", `"`)

	var data struct {
		Src string `json:"src"`
	}
	if err := json.Unmarshal([]byte(linkData), &data); err != nil {
		return ""
	}

	return data.Src
}
