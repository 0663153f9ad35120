package scorer

import (
	"strings"

	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// Score는 지표 집합을 [0,1] 범위의 최종 협찬 확률로 집계합니다.
// 단계 순서:
//  1. (유형, 패턴) 키로 중복 제거 - 신뢰 출처(OCR 계열) 사본 우선
//  2. 지표별 확률 계산 - 힌트가 있으면 사용, 없으면 유형/출처 가중치 혼합
//  3. 학술/정보성 문맥 완화 - 비신뢰 출처 지표만 감쇠
//  4. 최대값/평균 결합 + 다중 근거 보너스
//  5. 상한 적용
//  6. 단일 저특이성 키워드 상한
//  7. 신뢰 출처 최소 점수
func Score(indicators []structure.SponsorIndicator) float64 {
	if len(indicators) == 0 {
		return 0
	}

	w := structure.Weights

	deduped := dedupe(indicators)

	trusted := hasTrustedSource(deduped)
	academic := hasAcademicContext(deduped)

	// 지표별 확률 계산
	probs := make([]float64, len(deduped))
	maxProb := 0.0
	sum := 0.0
	for i, ind := range deduped {
		p := indicatorProbability(ind, w)

		// 학술/정보성 문맥에서는 비신뢰 출처 지표를 감쇠
		if academic && !ind.Source.SourceType.IsTrusted() {
			p *= w.AcademicDampening
		}

		probs[i] = p
		sum += p
		if p > maxProb {
			maxProb = p
		}
	}
	mean := sum / float64(len(probs))

	// 최대값 중심 결합 (신뢰 출처가 있으면 최대값 비중을 높임)
	maxBlend := w.UntrustedMaxBlend
	if trusted {
		maxBlend = w.TrustedMaxBlend
	}
	score := maxBlend*maxProb + (1-maxBlend)*mean

	// 다중 근거 보너스
	bonus := w.IndicatorBonus * float64(len(deduped)-1)
	if bonus > w.MaxBonus {
		bonus = w.MaxBonus
	}
	score += bonus

	// 상한 적용
	ceiling := w.UntrustedCeiling
	if trusted || maxProb >= w.ExactKeyword {
		ceiling = w.TrustedCeiling
	}
	if score > ceiling {
		score = ceiling
	}

	// 단일 저특이성 키워드 상한
	if len(deduped) == 1 && isWeakKeyword(deduped[0], w) && score > w.WeakKeywordCap {
		score = w.WeakKeywordCap
	}

	// 신뢰 출처 최소 점수 (상한보다 우선)
	if floor := trustedFloor(deduped, w); score < floor {
		score = floor
	}

	return clamp01(score)
}

// IsSponsored는 지표가 하나라도 있으면 협찬으로 판정합니다
func IsSponsored(indicators []structure.SponsorIndicator) bool {
	return len(indicators) > 0
}

// dedupe는 (유형, 패턴) 키로 중복을 제거합니다. 신뢰 출처 사본을 우선합니다
func dedupe(indicators []structure.SponsorIndicator) []structure.SponsorIndicator {
	type key struct {
		typ     structure.IndicatorType
		pattern string
	}

	index := make(map[key]int)
	result := make([]structure.SponsorIndicator, 0, len(indicators))

	for _, ind := range indicators {
		k := key{ind.Type, ind.Pattern}
		if at, exists := index[k]; exists {
			// 신뢰 출처 사본으로 교체
			if ind.Source.SourceType.IsTrusted() && !result[at].Source.SourceType.IsTrusted() {
				result[at] = ind
			}
			continue
		}
		index[k] = len(result)
		result = append(result, ind)
	}

	return result
}

// indicatorProbability는 지표 하나의 확률을 계산합니다
func indicatorProbability(ind structure.SponsorIndicator, w structure.WeightConfig) float64 {
	// 명시적 힌트가 있으면 사용
	if ind.Probability > 0 {
		return clamp01(ind.Probability)
	}

	typeWeight := w.TypeWeights[ind.Type]
	sourceWeight := w.SourceWeights[ind.Source.SourceType]

	// 신뢰 출처는 출처 가중치 쪽으로 치우친 혼합
	blend := w.UntrustedSourceBlend
	if ind.Source.SourceType.IsTrusted() {
		blend = w.TrustedSourceBlend
	}

	return clamp01((1-blend)*typeWeight + blend*sourceWeight)
}

// hasTrustedSource는 신뢰 출처(OCR 계열) 지표가 있는지 확인합니다
func hasTrustedSource(indicators []structure.SponsorIndicator) bool {
	for _, ind := range indicators {
		if ind.Source.SourceType.IsTrusted() {
			return true
		}
	}
	return false
}

// hasAcademicContext는 학술/정보성 문맥 용어가 지표 텍스트에 있는지 확인합니다
func hasAcademicContext(indicators []structure.SponsorIndicator) bool {
	for _, ind := range indicators {
		text := strings.ToLower(utils.NormalizeText(ind.MatchedText + " " + ind.Source.Text))
		for _, term := range structure.ACADEMIC_CONTEXT_TERMS {
			if strings.Contains(text, strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}

// isWeakKeyword는 비신뢰 출처의 저특이성 단일 키워드인지 확인합니다
func isWeakKeyword(ind structure.SponsorIndicator, w structure.WeightConfig) bool {
	return ind.Type == structure.IndicatorTypeKeyword &&
		!ind.Source.SourceType.IsTrusted() &&
		ind.Probability > 0 &&
		ind.Probability <= w.WeakKeywordWeight
}

// trustedFloor는 신뢰 출처 지표에 따른 최소 점수를 반환합니다
func trustedFloor(indicators []structure.SponsorIndicator, w structure.WeightConfig) float64 {
	floor := 0.0

	for _, ind := range indicators {
		if !ind.Source.SourceType.IsTrusted() {
			continue
		}

		// 규제 배지 도메인 이미지는 확정
		if ind.Pattern == "sponsorDomain" {
			return w.SponsorDomainFloor
		}

		f := w.TrustedFloor
		if ind.Type == structure.IndicatorTypeExactKeyword {
			f = w.TrustedExactFloor
		}
		if f > floor {
			floor = f
		}
	}

	return floor
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
