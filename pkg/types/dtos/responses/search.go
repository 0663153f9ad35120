package response

import structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"

// Search는 검색 요청에 대한 응답을 나타냅니다.
type Search struct {
	Keyword          string               `json:"keyword"`
	TotalResults     int                  `json:"totalResults"`
	SponsoredResults int                  `json:"sponsoredResults"`
	Page             int                  `json:"page"`
	ItemsPerPage     int                  `json:"itemsPerPage"`
	Posts            []structure.BlogPost `json:"posts"`
}

// AnalyzeText는 텍스트 분석 응답입니다
type AnalyzeText struct {
	IsSponsored bool                         `json:"isSponsored"`
	Probability float64                      `json:"probability"`
	Indicators  []structure.SponsorIndicator `json:"indicators"`
}
