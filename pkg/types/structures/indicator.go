package structure

// SponsorIndicator는 협찬 근거 한 건을 나타냅니다.
// 모든 생성자는 Source를 반드시 채워야 합니다 (집계 가중치가 Source에 의존).
type SponsorIndicator struct {
	Type        IndicatorType     `json:"type"`
	Pattern     string            `json:"pattern"`
	MatchedText string            `json:"matchedText"`
	Probability float64           `json:"probability,omitempty"`
	Source      SponsorSource     `json:"source"`
	SourceInfo  map[string]string `json:"sourceInfo,omitempty"`
}

type IndicatorType string

const (
	IndicatorTypeExactKeyword IndicatorType = "exactKeyword"
	IndicatorTypeKeyword      IndicatorType = "keyword"
	IndicatorTypePattern      IndicatorType = "pattern"
	IndicatorTypeSpecialCase  IndicatorType = "specialCase"
	IndicatorTypeHTMLClass    IndicatorType = "htmlClass"
	IndicatorTypeStickerText  IndicatorType = "stickerText"
)

// SponsorSourceType은 근거가 추출된 출처를 정의합니다
type SponsorSourceType string

const (
	SourceDescription    SponsorSourceType = "description"    // 검색 스니펫
	SourceOCR            SponsorSourceType = "ocr"            // 일반 OCR
	SourceHTMLText       SponsorSourceType = "htmlText"       // HTML 텍스트
	SourceHTMLClass      SponsorSourceType = "htmlClass"      // HTML 클래스 속성
	SourceStickerOCR     SponsorSourceType = "stickerOcr"     // 스티커 OCR
	SourceImageOCR       SponsorSourceType = "imageOcr"       // 본문 이미지 OCR
	SourceFirstParagraph SponsorSourceType = "firstParagraph" // 첫 문단
	SourceHTMLElement    SponsorSourceType = "htmlElement"    // 구조 마커
)

type SponsorSource struct {
	SourceType SponsorSourceType `json:"sourceType"`
	Text       string            `json:"text,omitempty"`
}

// IsTrusted는 OCR/이미지/스티커 계열 출처인지 확인합니다.
// 이 출처들은 집계 시 최소 점수(floor)를 부과합니다.
func (t SponsorSourceType) IsTrusted() bool {
	switch t {
	case SourceOCR, SourceStickerOCR, SourceImageOCR:
		return true
	}
	return false
}
