package crawler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/parser"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// CrawlerService는 블로그 콘텐츠를 크롤링하는 인터페이스입니다
type CrawlerService interface {
	// CrawlBlogPost는 블로그 포스트 URL에서 콘텐츠를 크롤링합니다
	CrawlBlogPost(url string) (*structure.CrawlResult, error)
}

// CrawlerImpl는 블로그 크롤러 구현체입니다
type CrawlerImpl struct {
	client *http.Client
	config *configs.EnvConfig
}

// NewCrawlerService는 새 크롤러 서비스를 생성합니다
func NewCrawlerService() CrawlerService {
	return &CrawlerImpl{
		client: &http.Client{
			Timeout: constants.CRAWL_TIMEOUT,
		},
		config: configs.GetConfig(),
	}
}

// CrawlBlogPost는 블로그 포스트 URL에서 콘텐츠와 분석 신호를 추출합니다
func (c *CrawlerImpl) CrawlBlogPost(url string) (*structure.CrawlResult, error) {
	if url == "" {
		return nil, fmt.Errorf("URL이 비어 있습니다")
	}

	url = normalizeURL(url)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}

	// 모바일 브라우저 에뮬레이션 헤더 (차단 방지)
	req.Header.Add("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1")
	req.Header.Add("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Add("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Add("Referer", "https://m.search.naver.com/")
	req.Header.Add("Upgrade-Insecure-Requests", "1")
	req.Header.Add("Cache-Control", "max-age=0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP 오류 (%d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}

	result := &structure.CrawlResult{
		URL: url,
	}

	// 차단 페이지 확인
	html := string(body)
	result.RawHTML = html
	for _, marker := range constants.BLOCK_MARKERS {
		if strings.Contains(html, marker) {
			utils.Warn("crawler", "크롤링이 차단되었습니다: %s", url)
			result.Blocked = true
			return result, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("HTML 파싱 실패: %v", err)
	}

	ParseBlogDocument(doc, result)

	return result, nil
}

// ParseBlogDocument는 파싱된 문서에서 분석 신호를 추출해 result에 채웁니다
func ParseBlogDocument(doc *goquery.Document, result *structure.CrawlResult) {
	result.Title = strings.TrimSpace(doc.Find("div.se-module-text h3, .se_title, .htitle, h1, h2.title").First().Text())

	// 첫 문단 + 초반부 인용구
	result.FirstParagraph, _ = parser.FindFirstParagraph(doc)

	// 스티커/배지 이미지
	if sticker := parser.FindSticker(doc); sticker != nil {
		result.StickerURL = parser.NormalizeImageURL(sticker.Payload)
	}

	// 본문 첫 이미지
	if image := parser.FindBodyImage(doc); image != nil {
		result.ImageURL = parser.NormalizeImageURL(image.Payload)
	}
}

// normalizeURL은 URL을 크롤링에 적합한 형태로 정규화합니다.
// 네이버 블로그는 구조가 단순한 모바일 버전으로 변환합니다
func normalizeURL(url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	if strings.Contains(url, "blog.naver.com") && !strings.Contains(url, "m.blog.naver.com") {
		url = strings.Replace(url, "blog.naver.com", "m.blog.naver.com", 1)
	}

	return url
}
