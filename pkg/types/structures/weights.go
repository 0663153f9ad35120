package structure

// WeightConfig는 매칭/집계에 쓰이는 모든 수치 상수를 한 곳에 모은 테이블입니다.
// 값들은 조정 가능한 상수이며 계약이 아닙니다.
type WeightConfig struct {
	// 지표 유형별 가중치
	TypeWeights map[IndicatorType]float64
	// 출처별 가중치
	SourceWeights map[SponsorSourceType]float64

	// 정확 키워드 확률 (매처 1단계)
	ExactKeyword float64
	// 특수 케이스 확률 (매처 4단계)
	SpecialCase float64

	// 혼합 비율: 신뢰 출처(OCR 계열)는 출처 가중치 쪽으로 치우침
	TrustedSourceBlend   float64 // 출처 가중치 비중 (신뢰 출처)
	UntrustedSourceBlend float64 // 출처 가중치 비중 (그 외)

	// 학술/정보성 문맥 완화 계수
	AcademicDampening float64

	// 신뢰 출처 최소 점수
	TrustedFloor       float64
	TrustedExactFloor  float64 // 정확 키워드가 신뢰 출처에서 나온 경우
	SponsorDomainFloor float64 // 규제 배지 도메인 이미지

	// 단일 저특이성 키워드 상한
	WeakKeywordWeight float64 // 이 이하 가중치의 키워드를 저특이성으로 간주
	WeakKeywordCap    float64

	// 최대/평균 결합 비율과 다중 근거 보너스
	TrustedMaxBlend   float64
	UntrustedMaxBlend float64
	IndicatorBonus    float64
	MaxBonus          float64

	// 전체 상한
	TrustedCeiling   float64
	UntrustedCeiling float64
}

// Weights는 기본 가중치 테이블입니다
var Weights = WeightConfig{
	TypeWeights: map[IndicatorType]float64{
		IndicatorTypeExactKeyword: 0.9,
		IndicatorTypePattern:      0.8,
		IndicatorTypeSpecialCase:  0.75,
		IndicatorTypeStickerText:  0.7,
		IndicatorTypeHTMLClass:    0.7,
		IndicatorTypeKeyword:      0.4,
	},
	SourceWeights: map[SponsorSourceType]float64{
		SourceStickerOCR:     0.85,
		SourceImageOCR:       0.8,
		SourceOCR:            0.8,
		SourceDescription:    0.8,
		SourceHTMLClass:      0.7,
		SourceHTMLElement:    0.7,
		SourceFirstParagraph: 0.6,
		SourceHTMLText:       0.3,
	},

	ExactKeyword: 0.9,
	SpecialCase:  0.85,

	TrustedSourceBlend:   0.75,
	UntrustedSourceBlend: 0.3,

	AcademicDampening: 0.6,

	TrustedFloor:       0.7,
	TrustedExactFloor:  0.85,
	SponsorDomainFloor: 1.0,

	WeakKeywordWeight: 0.2,
	WeakKeywordCap:    0.45,

	TrustedMaxBlend:   0.8,
	UntrustedMaxBlend: 0.7,
	IndicatorBonus:    0.05,
	MaxBonus:          0.15,

	TrustedCeiling:   0.95,
	UntrustedCeiling: 0.8,
}
