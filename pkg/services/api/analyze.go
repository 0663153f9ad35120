package api

import (
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/matcher"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/scorer"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// 분석할 가치가 있는 최소 텍스트 길이 (rune 기준)
const minAnalyzeTextLength = 10

// AnalyzeImpl는 텍스트 분석 서비스 구현체입니다
type AnalyzeImpl struct{}

// NewAnalyzeService는 새 텍스트 분석 서비스를 생성합니다
func NewAnalyzeService() _interface.AnalyzeService {
	return &AnalyzeImpl{}
}

// AnalyzeText는 임의의 텍스트에 대해 협찬 여부를 판정합니다.
// 한국어가 포함되지 않았거나 너무 짧은 텍스트는 검사 없이 비협찬으로 처리합니다
func (s *AnalyzeImpl) AnalyzeText(text string) (bool, float64, []structure.SponsorIndicator) {
	if len([]rune(text)) < minAnalyzeTextLength || !utils.HasKoreanText(text) {
		return false, 0, []structure.SponsorIndicator{}
	}

	indicators := matcher.Match(text, structure.SourceHTMLText)

	return scorer.IsSponsored(indicators), scorer.Score(indicators), indicators
}
