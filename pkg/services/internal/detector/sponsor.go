package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/matcher"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/parser"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// SponsorDetector는 크롤링 결과에서 협찬 근거를 찾는 캐스케이드 탐지기입니다
type SponsorDetector interface {
	// Detect는 크롤링 결과에 대해 탐지 캐스케이드를 실행합니다
	Detect(crawl *structure.CrawlResult) structure.DetectionResult
}

// SponsorImpl는 캐스케이드 탐지기 구현체입니다.
// 단계 순서는 배지 -> 본문 이미지 -> 첫 문단 -> 구조 마커이며,
// 근거를 낸 첫 단계에서 멈춥니다
type SponsorImpl struct {
	ocrService _interface.OCRService
}

// NewSponsorDetector는 새 캐스케이드 탐지기를 생성합니다
func NewSponsorDetector(ocrService _interface.OCRService) SponsorDetector {
	return &SponsorImpl{
		ocrService: ocrService,
	}
}

// Detect는 탐지 캐스케이드를 실행합니다
func (d *SponsorImpl) Detect(crawl *structure.CrawlResult) structure.DetectionResult {
	trace := make(map[string]string)

	// 마크업을 얻지 못한 경우 추측하지 않고 즉시 반환
	if crawl == nil {
		trace["error"] = "크롤링 결과가 없습니다"
		return structure.DetectionResult{DebugTrace: trace}
	}
	if crawl.Blocked {
		trace["error"] = "접근이 차단된 페이지입니다"
		return structure.DetectionResult{DebugTrace: trace}
	}

	// 1단계: 배지/스티커
	if indicators := d.checkBadge(crawl.StickerURL, structure.SourceStickerOCR, trace, "badge"); len(indicators) > 0 {
		trace["stage"] = "badge"
		return structure.DetectionResult{IsSponsored: true, Indicators: indicators, DebugTrace: trace}
	}

	// 2단계: 본문 이미지
	if indicators := d.checkBadge(crawl.ImageURL, structure.SourceImageOCR, trace, "image"); len(indicators) > 0 {
		trace["stage"] = "image"
		return structure.DetectionResult{IsSponsored: true, Indicators: indicators, DebugTrace: trace}
	}

	// 3단계: 첫 문단
	if crawl.FirstParagraph != "" {
		trace["paragraph"] = excerpt(crawl.FirstParagraph)
		if indicators := matcher.Match(crawl.FirstParagraph, structure.SourceFirstParagraph); len(indicators) > 0 {
			trace["stage"] = "paragraph"
			return structure.DetectionResult{IsSponsored: true, Indicators: indicators, DebugTrace: trace}
		}
	}

	// 4단계: 구조 마커
	if indicators := scanStructure(crawl.RawHTML, trace); len(indicators) > 0 {
		trace["stage"] = "structure"
		return structure.DetectionResult{IsSponsored: true, Indicators: indicators, DebugTrace: trace}
	}

	trace["stage"] = "done"
	return structure.DetectionResult{DebugTrace: trace}
}

// checkBadge는 배지/이미지 단계의 공통 검사를 수행합니다
func (d *SponsorImpl) checkBadge(imageURL string, source structure.SponsorSourceType, trace map[string]string, stage string) []structure.SponsorIndicator {
	if imageURL == "" {
		return nil
	}

	trace[stage] = imageURL

	// 협찬 업체가 발급한 배지 도메인은 그 자체로 확정 근거
	if parser.IsSponsorDomain(imageURL) {
		return []structure.SponsorIndicator{{
			Type:        structure.IndicatorTypeStickerText,
			Pattern:     "sponsorDomain",
			MatchedText: imageURL,
			Probability: structure.Weights.SponsorDomainFloor,
			Source: structure.SponsorSource{
				SourceType: source,
				Text:       imageURL,
			},
			SourceInfo: map[string]string{"imageUrl": imageURL},
		}}
	}

	ocrText := d.recognize(imageURL)
	if ocrText == "" {
		return nil
	}
	trace[stage+"Ocr"] = excerpt(ocrText)

	indicators := matcher.MatchOCR(ocrText, source)
	for i := range indicators {
		if indicators[i].SourceInfo == nil {
			indicators[i].SourceInfo = map[string]string{}
		}
		indicators[i].SourceInfo["imageUrl"] = imageURL
	}

	// 짧은 배지 텍스트 규칙: 키워드로 읽기 어려운 1~4자 텍스트라도
	// 배지 호스팅 도메인의 이미지라면 그 존재 자체가 강한 신호
	if len(indicators) == 0 && parser.IsStickerDomain(imageURL) {
		if runes := []rune(strings.TrimSpace(ocrText)); len(runes) >= 1 && len(runes) <= 4 {
			indicators = append(indicators, structure.SponsorIndicator{
				Type:        structure.IndicatorTypeStickerText,
				Pattern:     "shortBadgeText",
				MatchedText: strings.TrimSpace(ocrText),
				Probability: structure.Weights.TypeWeights[structure.IndicatorTypeStickerText],
				Source: structure.SponsorSource{
					SourceType: source,
					Text:       ocrText,
				},
				SourceInfo: map[string]string{"imageUrl": imageURL},
			})
		}
	}

	return indicators
}

// recognize는 OCR을 실행하고 실패를 모두 흡수합니다 (보조 근거이므로 best-effort)
func (d *SponsorImpl) recognize(imageURL string) string {
	if d.ocrService == nil {
		return ""
	}

	text, err := d.ocrService.ExtractTextFromImage(imageURL)
	if err != nil {
		utils.Warn("detector", "OCR 실패 (%s): %v", imageURL, err)
		return ""
	}
	return text
}

// 구조 스캔용 정규식은 패키지 로드 시 한 번만 컴파일합니다
var (
	sponsorClassRegexes    = compileClassPatterns(structure.SPONSOR_CLASS_PATTERNS)
	nonSponsorClassRegexes = compileClassPatterns(structure.NON_SPONSOR_CLASS_PATTERNS)
)

func compileClassPatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			utils.Error("detector", "클래스 패턴 컴파일 실패: %s (%v)", p, err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// scanStructure는 협찬 관련 클래스 이름을 가진 요소들을 스캔합니다
func scanStructure(rawHTML string, trace map[string]string) []structure.SponsorIndicator {
	if rawHTML == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		trace["structureError"] = err.Error()
		return nil
	}

	var indicators []structure.SponsorIndicator

	doc.Find("[class]").Each(func(_ int, elem *goquery.Selection) {
		classAttr, _ := elem.Attr("class")

		var matchedPattern string
		for _, re := range sponsorClassRegexes {
			if re.MatchString(classAttr) {
				matchedPattern = re.String()
				break
			}
		}
		if matchedPattern == "" {
			return
		}

		// 협찬과 무관한 것으로 알려진 클래스 제외
		for _, re := range nonSponsorClassRegexes {
			if re.MatchString(classAttr) {
				return
			}
		}

		text := strings.TrimSpace(elem.Text())
		if runes := []rune(text); len(runes) > constants.ELEMENT_EXCERPT_LENGTH {
			text = string(runes[:constants.ELEMENT_EXCERPT_LENGTH])
		}
		if text == "" {
			text = "(텍스트 없음)"
		}

		indicators = append(indicators, structure.SponsorIndicator{
			Type:        structure.IndicatorTypeHTMLClass,
			Pattern:     matchedPattern,
			MatchedText: text,
			Source: structure.SponsorSource{
				SourceType: structure.SourceHTMLElement,
				Text:       classAttr,
			},
			SourceInfo: map[string]string{"class": classAttr},
		})
	})

	if len(indicators) > 0 {
		trace["structureElements"] = fmt.Sprintf("%d", len(indicators))
	}

	return indicators
}

// excerpt는 추적 정보에 기록할 짧은 발췌를 만듭니다
func excerpt(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > constants.ELEMENT_EXCERPT_LENGTH {
		return string(runes[:constants.ELEMENT_EXCERPT_LENGTH]) + "..."
	}
	return string(runes)
}
