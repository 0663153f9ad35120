package api

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

type fakeCrawler struct {
	calls  int32
	result *structure.CrawlResult
	err    error
	panics bool
}

func (f *fakeCrawler) CrawlBlogPost(url string) (*structure.CrawlResult, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.panics {
		panic("연결 끊김")
	}
	return f.result, f.err
}

type fakeDetector struct {
	calls  int32
	result structure.DetectionResult
}

func (f *fakeDetector) Detect(crawl *structure.CrawlResult) structure.DetectionResult {
	atomic.AddInt32(&f.calls, 1)
	return f.result
}

func newTestService(crawler _interface.CrawlerService, det *fakeDetector) *SearchImpl {
	return &SearchImpl{
		Service:         _interface.Service{Config: &configs.EnvConfig{}},
		crawlerService:  crawler,
		sponsorDetector: det,
	}
}

func TestProcessPostExactSnippetSkipsCrawl(t *testing.T) {
	crawler := &fakeCrawler{}
	det := &fakeDetector{}
	svc := newTestService(crawler, det)

	post := svc.processPost(structure.NaverSearchItem{
		Title:       "<b>맛집</b> 후기",
		Description: "스폰서로 제공받아 작성한 후기입니다",
		Link:        "https://blog.naver.com/tester/100",
	})

	if !post.IsSponsored {
		t.Error("정확 키워드 스니펫은 협찬으로 판정되어야 합니다")
	}
	if post.SponsorProbability < 0.85 {
		t.Errorf("확률 %.2f는 0.85 이상이어야 합니다", post.SponsorProbability)
	}
	if len(post.SponsorIndicators) != 1 {
		t.Errorf("지표 %d개, 1개여야 합니다", len(post.SponsorIndicators))
	}
	if atomic.LoadInt32(&crawler.calls) != 0 {
		t.Error("확신 있는 스니펫은 크롤링을 생략해야 합니다")
	}
}

func TestProcessPostCrawlFailureKeepsSnippetResult(t *testing.T) {
	crawler := &fakeCrawler{err: fmt.Errorf("connection refused")}
	det := &fakeDetector{}
	svc := newTestService(crawler, det)

	post := svc.processPost(structure.NaverSearchItem{
		Title:       "오늘의 날씨",
		Description: "오늘의 날씨는 맑습니다",
		Link:        "https://blog.naver.com/tester/101",
	})

	if post.IsSponsored {
		t.Error("비협찬 포스트가 협찬으로 판정되었습니다")
	}
	if post.SponsorProbability != 0 {
		t.Errorf("확률 %.2f, 0이어야 합니다", post.SponsorProbability)
	}
	if len(post.SponsorIndicators) != 0 {
		t.Errorf("지표 %d개, 비어 있어야 합니다", len(post.SponsorIndicators))
	}
	if post.Error != "" {
		t.Error("크롤링 실패는 포스트 오류가 아니라 스니펫 결과로 처리되어야 합니다")
	}
	if atomic.LoadInt32(&det.calls) != 0 {
		t.Error("크롤링 실패 시 탐지기를 호출하면 안 됩니다")
	}
}

func TestProcessPostMergesDetectionIndicators(t *testing.T) {
	crawler := &fakeCrawler{result: &structure.CrawlResult{URL: "https://m.blog.naver.com/tester/102"}}
	det := &fakeDetector{result: structure.DetectionResult{
		IsSponsored: true,
		Indicators: []structure.SponsorIndicator{
			{
				Type:        structure.IndicatorTypeExactKeyword,
				Pattern:     "협찬을받아",
				MatchedText: "협찬을 받아 작성",
				Probability: structure.Weights.ExactKeyword,
				Source:      structure.SponsorSource{SourceType: structure.SourceStickerOCR},
			},
		},
	}}
	svc := newTestService(crawler, det)

	post := svc.processPost(structure.NaverSearchItem{
		Title:       "신상 카페 방문기",
		Description: "분위기 좋은 카페에 다녀왔어요",
		Link:        "https://blog.naver.com/tester/102",
	})

	if !post.IsSponsored {
		t.Error("탐지기 지표가 병합되어 협찬으로 판정되어야 합니다")
	}
	// 신뢰 출처의 정확 키워드 최소 점수
	if post.SponsorProbability < 0.85 {
		t.Errorf("확률 %.2f는 0.85 이상이어야 합니다", post.SponsorProbability)
	}
	if atomic.LoadInt32(&crawler.calls) != 1 {
		t.Errorf("크롤링 %d회, 1회여야 합니다", crawler.calls)
	}
}

func TestDetectPostsRecoversFromPanic(t *testing.T) {
	crawler := &fakeCrawler{panics: true}
	det := &fakeDetector{}
	svc := newTestService(crawler, det)

	items := []structure.NaverSearchItem{
		{Title: "첫 번째", Description: "공원 산책 일기입니다", Link: "https://blog.naver.com/a/1"},
	}

	posts := svc.detectPosts(items)

	if len(posts) != 1 {
		t.Fatalf("결과 %d개, 1개여야 합니다", len(posts))
	}
	if posts[0].Error == "" {
		t.Error("패닉이 발생한 포스트에는 오류가 기록되어야 합니다")
	}
	if posts[0].IsSponsored || posts[0].SponsorProbability != 0 {
		t.Error("패닉이 발생한 포스트는 무확신 결과여야 합니다")
	}
	if posts[0].Link != items[0].Link {
		t.Error("원본 검색 항목 정보가 유지되어야 합니다")
	}
}

func TestDetectPostsPreservesOrder(t *testing.T) {
	crawler := &fakeCrawler{err: fmt.Errorf("unreachable")}
	det := &fakeDetector{}
	svc := newTestService(crawler, det)

	items := make([]structure.NaverSearchItem, 12)
	for i := range items {
		items[i] = structure.NaverSearchItem{
			Title:       fmt.Sprintf("포스트 %d", i),
			Description: "오늘도 평범한 하루였습니다",
			Link:        fmt.Sprintf("https://blog.naver.com/tester/%d", i),
		}
	}

	posts := svc.detectPosts(items)

	if len(posts) != len(items) {
		t.Fatalf("결과 %d개, %d개여야 합니다", len(posts), len(items))
	}
	for i, post := range posts {
		if post.Link != items[i].Link {
			t.Errorf("인덱스 %d: 결과 순서가 입력 순서와 다릅니다 (%s)", i, post.Link)
		}
	}
}
