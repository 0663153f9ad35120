package _interface

import (
	request "github.com/kmsong-dev/nbsf-go/pkg/types/dtos/requests"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

// SearchService는 검색 서비스 인터페이스입니다
type SearchService interface {
	// SearchBlogPosts는 검색어로 블로그 포스트를 검색하고 협찬 여부를 판정합니다
	SearchBlogPosts(req request.SearchQuery) ([]structure.BlogPost, int, error)
}

// AnalyzeService는 단일 텍스트 판정 서비스 인터페이스입니다
type AnalyzeService interface {
	// AnalyzeText는 주어진 텍스트만으로 협찬 여부를 판정합니다
	AnalyzeText(text string) (bool, float64, []structure.SponsorIndicator)
}

// CrawlerService는 블로그 콘텐츠를 크롤링하는 인터페이스입니다
type CrawlerService interface {
	// CrawlBlogPost는 블로그 포스트 URL에서 콘텐츠를 크롤링합니다
	CrawlBlogPost(url string) (*structure.CrawlResult, error)
}
