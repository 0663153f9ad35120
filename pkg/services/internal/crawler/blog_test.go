package crawler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "네이버 블로그는 모바일로 변환",
			in:   "https://blog.naver.com/tester/223",
			want: "https://m.blog.naver.com/tester/223",
		},
		{
			name: "이미 모바일이면 유지",
			in:   "https://m.blog.naver.com/tester/223",
			want: "https://m.blog.naver.com/tester/223",
		},
		{
			name: "스킴 없는 URL 보정",
			in:   "blog.naver.com/tester/223",
			want: "https://m.blog.naver.com/tester/223",
		},
		{
			name: "외부 블로그는 그대로",
			in:   "https://example.tistory.com/12",
			want: "https://example.tistory.com/12",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeURL(tc.in); got != tc.want {
				t.Errorf("normalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCrawlBlogPostBlockedPage(t *testing.T) {
	// 차단 페이지는 에러가 아니라 Blocked 표시로 반환되어야 함
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>비정상적인 접근이 감지되었습니다</body></html>"))
	}))
	defer server.Close()

	c := &CrawlerImpl{client: server.Client()}

	result, err := c.CrawlBlogPost(server.URL)
	if err != nil {
		t.Fatalf("CrawlBlogPost 실패: %v", err)
	}
	if !result.Blocked {
		t.Error("Blocked = false, want true")
	}
}

func TestCrawlBlogPostExtractsSignals(t *testing.T) {
	html := `<html><body>
		<div class="se-main-container">
			<p class="se-text-paragraph">업체로부터 제공받아 작성한 후기입니다</p>
			<div class="se-sticker"><img src="https://storep-phinf.pstatic.net/sticker.png"></div>
			<img class="se-image-resource" src="https://postfiles.pstatic.net/food.jpg?type=w80_blur">
		</div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(html))
	}))
	defer server.Close()

	c := &CrawlerImpl{client: server.Client()}

	result, err := c.CrawlBlogPost(server.URL)
	if err != nil {
		t.Fatalf("CrawlBlogPost 실패: %v", err)
	}

	if result.FirstParagraph != "업체로부터 제공받아 작성한 후기입니다" {
		t.Errorf("FirstParagraph = %q", result.FirstParagraph)
	}
	if result.StickerURL != "https://storep-phinf.pstatic.net/sticker.png" {
		t.Errorf("StickerURL = %q", result.StickerURL)
	}
	// 이미지 URL은 정규화되어야 함
	if result.ImageURL != "https://postfiles.pstatic.net/food.jpg?type=w773" {
		t.Errorf("ImageURL = %q", result.ImageURL)
	}
}
