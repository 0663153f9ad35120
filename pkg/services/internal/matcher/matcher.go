package matcher

import (
	"fmt"
	"regexp"
	"strings"

	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// 정규식 패턴은 패키지 로드 시 한 번만 컴파일합니다
var compiledTextPatterns = compilePatterns(structure.SPONSOR_TEXT_PATTERNS)

func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			utils.Error("matcher", "패턴 컴파일 실패: %s (%v)", p, err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// Match는 텍스트에서 협찬 근거를 찾습니다.
// 단계 순서:
//  1. 정확 키워드 - 발견 즉시 해당 지표 하나만 반환
//  2. 단일 키워드 가중치
//  3. 문구 정규식 (원문 텍스트에 적용)
//  4. 특수 케이스 (두 용어 그룹 동시 출현)
//
// 1단계를 제외한 단계들은 누적되며, 중복 제거는 집계기의 몫입니다.
// 반환된 지표들은 모두 Source가 채워져 있습니다
func Match(text string, source structure.SponsorSourceType) []structure.SponsorIndicator {
	if text == "" {
		return nil
	}

	// 자모 분리와 공백 삽입에 강한 매칭을 위해 NFC 정규화 후 공백 제거
	normalized := strings.ToLower(utils.NormalizeText(text))

	src := structure.SponsorSource{
		SourceType: source,
		Text:       text,
	}

	// 1단계: 정확 키워드 확인 (발견 즉시 반환)
	if indicator := matchExact(normalized, src); indicator != nil {
		return []structure.SponsorIndicator{*indicator}
	}

	var indicators []structure.SponsorIndicator

	// 2단계: 단일 키워드 확인
	indicators = append(indicators, matchKeywords(normalized, src)...)

	// 3단계: 문구 정규식 확인 (토큰 경계가 필요해 원문에 적용)
	indicators = append(indicators, matchTextPatterns(text, src)...)

	// 4단계: 특수 케이스 패턴 확인
	indicators = append(indicators, matchSpecialCases(normalized, src)...)

	return indicators
}

// MatchOCR은 OCR 텍스트에서 협찬 근거를 찾습니다.
// OCR 결과는 공백 삽입이 흔해 정규식 단계를 정규화된 텍스트에도 한 번 더 적용합니다
func MatchOCR(text string, source structure.SponsorSourceType) []structure.SponsorIndicator {
	if text == "" {
		return nil
	}

	indicators := Match(text, source)

	// 정확 키워드로 확정된 경우 추가 검사 불필요
	if len(indicators) == 1 && indicators[0].Type == structure.IndicatorTypeExactKeyword {
		return indicators
	}

	src := structure.SponsorSource{
		SourceType: source,
		Text:       text,
	}

	normalized := strings.ToLower(utils.NormalizeText(text))
	for _, extra := range matchTextPatterns(normalized, src) {
		if !containsPattern(indicators, extra.Pattern) {
			indicators = append(indicators, extra)
		}
	}

	return indicators
}

// matchExact는 정확 키워드 단계를 수행합니다
func matchExact(normalized string, src structure.SponsorSource) *structure.SponsorIndicator {
	for _, exactKeyword := range structure.EXACT_SPONSOR_KEYWORDS {
		if strings.Contains(normalized, strings.ToLower(exactKeyword)) {
			return &structure.SponsorIndicator{
				Type:        structure.IndicatorTypeExactKeyword,
				Pattern:     exactKeyword,
				MatchedText: exactKeyword,
				Probability: structure.Weights.ExactKeyword,
				Source:      src,
			}
		}
	}
	return nil
}

// matchSpecialCases는 두 용어 그룹의 동시 출현을 확인합니다
func matchSpecialCases(normalized string, src structure.SponsorSource) []structure.SponsorIndicator {
	var indicators []structure.SponsorIndicator

	for _, pattern := range structure.SPECIAL_CASE_PATTERNS {
		var term1Match, term2Match string

		for _, term1 := range pattern.Terms1 {
			if strings.Contains(normalized, strings.ToLower(term1)) {
				term1Match = term1
				break
			}
		}
		if term1Match == "" {
			continue
		}

		for _, term2 := range pattern.Terms2 {
			if strings.Contains(normalized, strings.ToLower(term2)) {
				term2Match = term2
				break
			}
		}
		if term2Match == "" {
			continue
		}

		indicators = append(indicators, structure.SponsorIndicator{
			Type:        structure.IndicatorTypeSpecialCase,
			Pattern:     pattern.Name,
			MatchedText: fmt.Sprintf("%s + %s", term1Match, term2Match),
			Probability: structure.Weights.SpecialCase,
			Source:      src,
		})
	}

	return indicators
}

// matchTextPatterns는 협찬 문구 정규식을 적용합니다
func matchTextPatterns(text string, src structure.SponsorSource) []structure.SponsorIndicator {
	var indicators []structure.SponsorIndicator

	for _, re := range compiledTextPatterns {
		if matched := re.FindString(text); matched != "" {
			indicators = append(indicators, structure.SponsorIndicator{
				Type:        structure.IndicatorTypePattern,
				Pattern:     re.String(),
				MatchedText: matched,
				Probability: structure.Weights.TypeWeights[structure.IndicatorTypePattern],
				Source:      src,
			})
		}
	}

	return indicators
}

// matchKeywords는 단일 키워드 가중치 단계를 수행합니다
func matchKeywords(normalized string, src structure.SponsorSource) []structure.SponsorIndicator {
	var indicators []structure.SponsorIndicator

	for _, wk := range structure.SPONSOR_KEYWORDS {
		if strings.Contains(normalized, strings.ToLower(wk.Keyword)) {
			indicators = append(indicators, structure.SponsorIndicator{
				Type:        structure.IndicatorTypeKeyword,
				Pattern:     wk.Keyword,
				MatchedText: wk.Keyword,
				Probability: wk.Weight,
				Source:      src,
			})
		}
	}

	return indicators
}

func containsPattern(indicators []structure.SponsorIndicator, pattern string) bool {
	for _, ind := range indicators {
		if ind.Pattern == pattern {
			return true
		}
	}
	return false
}
