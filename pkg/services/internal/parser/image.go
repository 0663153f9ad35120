package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

var imageTypeRegex = regexp.MustCompile(`\?type=w(\d+)`)

// isExcludedImage는 지도/아이콘/프로필 등 분석 대상이 아닌 이미지인지 확인합니다
func isExcludedImage(url string) bool {
	lower := strings.ToLower(url)
	for _, pattern := range constants.EXCLUDE_IMAGE_PATTERNS {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// FindBodyImage는 본문 영역에서 첫 번째 일반 이미지를 찾습니다 (스티커 제외).
// 우선순위:
//  1. se-image-resource 클래스를 가진 img 태그
//  2. se-component se-image 컴포넌트의 data-linkdata
//  3. 일반 img 태그 (스티커 도메인과 제외 패턴 필터링)
func FindBodyImage(doc *goquery.Document) *structure.SignalLocation {
	contentArea := findContentArea(doc)

	// 1. se-image-resource 클래스를 가진 img 태그 직접 찾기 (가장 정확)
	if src, exists := contentArea.Find(".se-image-resource").First().Attr("src"); exists && src != "" {
		if !isExcludedImage(src) {
			return &structure.SignalLocation{
				Kind:    structure.SignalImage,
				Locator: ".se-image-resource",
				Payload: src,
				Method:  structure.ResolutionClassBased,
			}
		}
	}

	// 2. se-component se-image 컴포넌트의 링크데이터 확인
	component := contentArea.Find(".se-component.se-image").First()
	if component.Length() > 0 {
		module := component.Find(".se-module.se-module-image").First()
		if module.Length() > 0 {
			if linkData, exists := module.Find(".se-module-image-link").First().Attr("data-linkdata"); exists {
				if src := parseLinkDataSrc(linkData); src != "" && !isExcludedImage(src) {
					return &structure.SignalLocation{
						Kind:    structure.SignalImage,
						Locator: ".se-module-image-link",
						Payload: src,
						Method:  structure.ResolutionLinkDataBased,
					}
				}
			}
		}
	}

	// 3. 일반 이미지 태그 검색
	var found *structure.SignalLocation
	contentArea.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, exists := img.Attr("src")
		if !exists || src == "" {
			if src, exists = img.Attr("data-src"); !exists || src == "" {
				if src, exists = img.Attr("data-lazy-src"); !exists {
					return true
				}
			}
		}

		// 스티커 도메인과 제외 패턴 필터링
		if src == "" || IsStickerDomain(src) || isExcludedImage(src) {
			return true
		}
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			return true
		}

		found = &structure.SignalLocation{
			Kind:    structure.SignalImage,
			Locator: "img",
			Payload: src,
			Method:  structure.ResolutionImgBased,
		}
		return false
	})

	return found
}

// NormalizeImageURL은 이미지 URL을 원본 화질의 표준 형태로 변환합니다.
// 이미 정규화된 URL에 다시 적용해도 결과가 같습니다
func NormalizeImageURL(imgURL string) string {
	if imgURL == "" {
		return imgURL
	}

	// 1. 축소/흐림 효과 파라미터 수정
	if strings.Contains(imgURL, "?type=w80_blur") {
		imgURL = strings.Replace(imgURL, "?type=w80_blur", "?type=w773", 1)
	}

	// 2. 썸네일 호스트를 원본 호스트로 변환
	if strings.Contains(imgURL, "mblogthumb-phinf.pstatic.net") {
		imgURL = strings.Replace(imgURL, "mblogthumb-phinf.pstatic.net", "postfiles.pstatic.net", 1)

		// 축소된 크기 파라미터를 높은 화질로 변경
		if match := imageTypeRegex.FindStringSubmatch(imgURL); len(match) == 2 {
			if width, err := strconv.Atoi(match[1]); err == nil && width < 500 {
				imgURL = strings.Replace(imgURL, match[0], "?type=w773", 1)
			}
		}
	}

	return imgURL
}
