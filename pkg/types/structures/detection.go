package structure

// SignalKind는 캐스케이드 단계에서 찾는 신호의 종류입니다
type SignalKind string

const (
	SignalSticker   SignalKind = "sticker"
	SignalImage     SignalKind = "image"
	SignalParagraph SignalKind = "paragraph"
)

// ResolutionMethod는 신호를 어떤 방식으로 찾았는지 나타냅니다
type ResolutionMethod string

const (
	ResolutionClassBased    ResolutionMethod = "classBased"
	ResolutionLinkDataBased ResolutionMethod = "linkDataBased"
	ResolutionImgBased      ResolutionMethod = "imgBased"
	ResolutionStyleBased    ResolutionMethod = "styleBased"
)

// SignalLocation은 파싱된 마크업에서 찾아낸 신호 위치입니다. 생성 후 변경되지 않습니다.
type SignalLocation struct {
	Kind    SignalKind       `json:"kind"`
	Locator string           `json:"locator"`
	Payload string           `json:"payload"`
	Method  ResolutionMethod `json:"method"`
}

// DetectionResult는 한 포스트에 대한 캐스케이드 탐지 결과입니다.
// 집계기가 소비한 뒤 폐기되며 저장되지 않습니다.
type DetectionResult struct {
	IsSponsored bool               `json:"isSponsored"`
	Indicators  []SponsorIndicator `json:"indicators"`
	DebugTrace  map[string]string  `json:"debugTrace,omitempty"`
}

// CrawlResult는 블로그 포스트 마크업에서 추출한 원시 신호들입니다.
// RawHTML은 구조 마커 스캔 단계에서만 사용됩니다
type CrawlResult struct {
	URL            string
	Title          string
	FirstParagraph string
	StickerURL     string
	ImageURL       string
	RawHTML        string
	Blocked        bool
}
