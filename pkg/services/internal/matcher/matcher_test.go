package matcher

import (
	"strings"
	"testing"

	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

func hasType(indicators []structure.SponsorIndicator, typ structure.IndicatorType) bool {
	for _, ind := range indicators {
		if ind.Type == typ {
			return true
		}
	}
	return false
}

func TestMatchExactKeywordShortCircuits(t *testing.T) {
	// 정확 키워드가 있으면 다른 단계를 건너뛰고 지표 하나만 반환해야 함
	indicators := Match("스폰서로 제공받아 작성한 후기입니다", structure.SourceDescription)

	if len(indicators) != 1 {
		t.Fatalf("지표 개수 = %d, want 1", len(indicators))
	}

	ind := indicators[0]
	if ind.Type != structure.IndicatorTypeExactKeyword {
		t.Errorf("Type = %s, want %s", ind.Type, structure.IndicatorTypeExactKeyword)
	}
	if ind.Probability != structure.Weights.ExactKeyword {
		t.Errorf("Probability = %f, want %f", ind.Probability, structure.Weights.ExactKeyword)
	}
	if ind.Source.SourceType != structure.SourceDescription {
		t.Errorf("SourceType = %s, want %s", ind.Source.SourceType, structure.SourceDescription)
	}
}

func TestMatchNormalizesWhitespace(t *testing.T) {
	// 공백으로 쪼개진 키워드도 정규화 후 매칭되어야 함
	tests := []struct {
		name string
		text string
	}{
		{"공백 삽입", "협 찬 받은 제품"},
		{"개행 삽입", "협\n찬 후기"},
		{"전각 아님", "이 글은 협찬을 받았습니다"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			indicators := Match(tc.text, structure.SourceDescription)
			if len(indicators) != 1 || indicators[0].Type != structure.IndicatorTypeExactKeyword {
				t.Errorf("Match(%q) = %+v, want 정확 키워드 지표 1개", tc.text, indicators)
			}
		})
	}
}

func TestMatchSpecialCase(t *testing.T) {
	// 업체 + 지원 동시 출현은 특수 케이스로 잡혀야 함 (정확 키워드 없음)
	indicators := Match("업체에서 지원을 받은 상품입니다", structure.SourceFirstParagraph)

	if !hasType(indicators, structure.IndicatorTypeSpecialCase) {
		t.Fatalf("특수 케이스 지표가 없습니다: %+v", indicators)
	}
	if hasType(indicators, structure.IndicatorTypeExactKeyword) {
		t.Errorf("정확 키워드 지표가 있으면 안 됩니다: %+v", indicators)
	}
}

func TestMatchTextPattern(t *testing.T) {
	// 문구 정규식은 원문 텍스트에서 매칭되어야 함
	indicators := Match("업체로부터 지원받아 쓴 글", structure.SourceFirstParagraph)

	if !hasType(indicators, structure.IndicatorTypePattern) {
		t.Fatalf("정규식 지표가 없습니다: %+v", indicators)
	}
}

func TestMatchKeywords(t *testing.T) {
	indicators := Match("무료제공 받은 상품을 사용해 보았다", structure.SourceDescription)

	found := false
	for _, ind := range indicators {
		if ind.Type == structure.IndicatorTypeKeyword && ind.Pattern == "무료제공" {
			found = true
			if ind.Probability != structure.KeywordWeight("무료제공") {
				t.Errorf("Probability = %f, want %f", ind.Probability, structure.KeywordWeight("무료제공"))
			}
		}
	}

	if !found {
		t.Errorf("무료제공 키워드 지표가 없습니다: %+v", indicators)
	}
}

func TestMatchOrderIsDeterministic(t *testing.T) {
	// 같은 입력에 대한 지표 순서는 실행마다 동일해야 함 (응답 JSON 배열 순서 고정)
	text := "업체로부터 체험 상품을 무상 지원 받고 작성한 후기"

	signature := func(indicators []structure.SponsorIndicator) string {
		var parts []string
		for _, ind := range indicators {
			parts = append(parts, string(ind.Type)+":"+ind.Pattern)
		}
		return strings.Join(parts, "|")
	}

	first := signature(Match(text, structure.SourceDescription))
	if first == "" {
		t.Fatal("지표가 없습니다")
	}

	for i := 0; i < 100; i++ {
		if got := signature(Match(text, structure.SourceDescription)); got != first {
			t.Fatalf("실행 %d: 지표 순서가 달라졌습니다\n%s\n%s", i, first, got)
		}
	}
}

func TestMatchNoSponsor(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"빈 텍스트", ""},
		{"일상 텍스트", "오늘 날씨가 좋아서 공원에 다녀왔어요"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if indicators := Match(tc.text, structure.SourceDescription); len(indicators) != 0 {
				t.Errorf("Match(%q) = %+v, want 지표 없음", tc.text, indicators)
			}
		})
	}
}

func TestMatchOCRGarbledKeyword(t *testing.T) {
	// OCR이 잘못 읽은 협찬 문구도 정확 키워드로 잡혀야 함
	indicators := MatchOCR("이 포스팅은 [현산 받아 작성", structure.SourceStickerOCR)

	if len(indicators) != 1 || indicators[0].Type != structure.IndicatorTypeExactKeyword {
		t.Fatalf("OCR 오독 키워드 미탐지: %+v", indicators)
	}
	if indicators[0].Source.SourceType != structure.SourceStickerOCR {
		t.Errorf("SourceType = %s, want %s", indicators[0].Source.SourceType, structure.SourceStickerOCR)
	}
}

func TestMatchOCRSpacedPattern(t *testing.T) {
	// OCR 공백 삽입으로 원문 정규식이 빗나가도 정규화 패스에서 잡혀야 함
	indicators := MatchOCR("업체 로 부터 지 원 받 아 후기 씀", structure.SourceImageOCR)

	if len(indicators) == 0 {
		t.Fatalf("지표가 없습니다")
	}
	if !hasType(indicators, structure.IndicatorTypePattern) && !hasType(indicators, structure.IndicatorTypeSpecialCase) {
		t.Errorf("정규화 패스 지표가 없습니다: %+v", indicators)
	}
}
