package api

import (
	"fmt"
	"sync"

	client "github.com/kmsong-dev/nbsf-go/pkg/clients"
	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/crawler"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/detector"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/matcher"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/scorer"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	request "github.com/kmsong-dev/nbsf-go/pkg/types/dtos/requests"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// 스니펫만으로 확신해 크롤링을 생략하는 기준
const snippetSkipProbability = 0.9
const snippetSkipIndicators = 2

// SearchImpl는 검색 서비스 구현체입니다
type SearchImpl struct {
	_interface.Service
	naverClient     *client.NaverAPIClient
	crawlerService  _interface.CrawlerService
	sponsorDetector detector.SponsorDetector
}

// NewSearchService는 새 검색 서비스를 생성합니다.
// ocrRepo가 nil이면 OCR 캐시 없이 동작합니다
func NewSearchService(ocrRepo _interface.OCRRepository) _interface.SearchService {
	config := configs.GetConfig()

	return &SearchImpl{
		Service:         _interface.Service{Config: config},
		naverClient:     client.NewNaverAPIClient(config),
		crawlerService:  crawler.NewCrawlerService(),
		sponsorDetector: detector.NewSponsorDetector(detector.NewOCRService(ocrRepo)),
	}
}

// SearchBlogPosts는 검색어로 블로그 포스트를 검색하고 각 포스트의 협찬 여부를 판정합니다
func (s *SearchImpl) SearchBlogPosts(req request.SearchQuery) ([]structure.BlogPost, int, error) {
	if s.naverClient == nil {
		return nil, 0, fmt.Errorf("네이버 API 클라이언트가 초기화되지 않았습니다")
	}

	limit, offset := utils.PaginationRequest(req.Limit, req.Offset)

	// 검색 API 실패는 호출자에게 그대로 전파 (재시도 없음)
	searchResp, err := s.naverClient.SearchBlog(req.Query, limit, offset+1)
	if err != nil {
		return nil, 0, fmt.Errorf("네이버 블로그 검색 실패: %v", err)
	}

	posts := s.detectPosts(searchResp.Items)

	return posts, searchResp.Total, nil
}

// detectPosts는 포스트들을 제한된 동시성으로 병렬 처리합니다.
// 결과는 완료 순서와 무관하게 입력 인덱스 위치에 재조립됩니다
func (s *SearchImpl) detectPosts(items []structure.NaverSearchItem) []structure.BlogPost {
	results := make([]structure.BlogPost, len(items))

	sem := make(chan struct{}, constants.MAX_CONCURRENT_POSTS)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)

		go func(index int, item structure.NaverSearchItem) {
			defer wg.Done()

			// 단일 포스트의 예기치 못한 오류는 다른 포스트 처리를 중단시키지 않고
			// 해당 포스트만 무확신 결과로 변환
			defer func() {
				if r := recover(); r != nil {
					utils.Error("search", "포스트 처리 중 패닉 복구: %v (%s)", r, item.Link)
					results[index] = structure.BlogPost{
						NaverSearchItem:   item,
						SponsorIndicators: []structure.SponsorIndicator{},
						Error:             fmt.Sprintf("처리 실패: %v", r),
					}
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[index] = s.processPost(item)
		}(i, item)
	}

	wg.Wait()

	return results
}

// processPost는 포스트 하나에 대해 전체 파이프라인을 실행합니다:
// 스니펫 검사 -> (조건부) 크롤링 -> 캐스케이드 탐지 -> 지표 병합 -> 집계
func (s *SearchImpl) processPost(item structure.NaverSearchItem) structure.BlogPost {
	post := structure.BlogPost{
		NaverSearchItem:   item,
		SponsorIndicators: []structure.SponsorIndicator{},
	}

	// 1. 검색 스니펫 검사 (네트워크 비용 없음)
	snippet := utils.RemoveHTMLTags(item.Title + " " + item.Description)
	indicators := matcher.Match(snippet, structure.SourceDescription)

	post.SponsorIndicators = indicators
	post.SponsorProbability = scorer.Score(indicators)
	post.IsSponsored = scorer.IsSponsored(indicators)

	// 스니펫만으로 충분히 확신하면 크롤링 생략
	if post.SponsorProbability >= snippetSkipProbability || len(indicators) >= snippetSkipIndicators {
		utils.RecordSponsorProbability(post.SponsorProbability)
		return post
	}

	// 2. 마크업 크롤링 (실패 시 스니펫 결과로 진행)
	crawl, err := s.crawlerService.CrawlBlogPost(item.Link)
	if err != nil {
		utils.Debug("search", "크롤링 실패, 스니펫 결과로 진행: %s (%v)", item.Link, err)
		utils.RecordSponsorProbability(post.SponsorProbability)
		return post
	}

	// 3. 캐스케이드 탐지 및 지표 병합
	detection := s.sponsorDetector.Detect(crawl)
	if len(detection.Indicators) > 0 {
		post.SponsorIndicators = append(post.SponsorIndicators, detection.Indicators...)
		post.SponsorProbability = scorer.Score(post.SponsorIndicators)
		post.IsSponsored = scorer.IsSponsored(post.SponsorIndicators)
	}

	utils.RecordSponsorProbability(post.SponsorProbability)

	return post
}
