package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("HTML 파싱 실패: %v", err)
	}
	return doc
}

func TestFindStickerClassBased(t *testing.T) {
	html := `<html><body>
		<div class="se-sticker">
			<img src="https://storep-phinf.pstatic.net/sticker/123.png">
		</div>
	</body></html>`

	loc := FindSticker(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("스티커를 찾지 못했습니다")
	}
	if loc.Method != structure.ResolutionClassBased {
		t.Errorf("Method = %s, want %s", loc.Method, structure.ResolutionClassBased)
	}
	if loc.Payload != "https://storep-phinf.pstatic.net/sticker/123.png" {
		t.Errorf("Payload = %s", loc.Payload)
	}
}

func TestFindStickerLinkDataBased(t *testing.T) {
	// 클래스 매칭이 없을 때 data-linkdata JSON에서 찾아야 함
	html := `<html><body>
		<a data-linkdata='{"src": "https://cometoplay.kr/badge/77.png"}'>배지</a>
	</body></html>`

	loc := FindSticker(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("스티커를 찾지 못했습니다")
	}
	if loc.Method != structure.ResolutionLinkDataBased {
		t.Errorf("Method = %s, want %s", loc.Method, structure.ResolutionLinkDataBased)
	}
}

func TestFindStickerStyleBased(t *testing.T) {
	html := `<html><body>
		<div style="background-image: url('https://ssl.pstatic.net/sticker/9.png')"></div>
	</body></html>`

	loc := FindSticker(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("스티커를 찾지 못했습니다")
	}
	if loc.Method != structure.ResolutionStyleBased {
		t.Errorf("Method = %s, want %s", loc.Method, structure.ResolutionStyleBased)
	}
	if loc.Payload != "https://ssl.pstatic.net/sticker/9.png" {
		t.Errorf("Payload = %s", loc.Payload)
	}
}

func TestFindStickerIgnoresOtherDomains(t *testing.T) {
	html := `<html><body>
		<div class="se-sticker"><img src="https://example.com/pic.png"></div>
		<img src="https://postfiles.pstatic.net/photo.jpg">
	</body></html>`

	if loc := FindSticker(docFromHTML(t, html)); loc != nil {
		t.Errorf("스티커 도메인이 아닌 이미지가 잡혔습니다: %+v", loc)
	}
}

func TestFindBodyImageSmartEditor(t *testing.T) {
	html := `<html><body>
		<div class="se-main-container">
			<img class="se-image-resource" src="https://postfiles.pstatic.net/food.jpg">
		</div>
	</body></html>`

	loc := FindBodyImage(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("본문 이미지를 찾지 못했습니다")
	}
	if loc.Payload != "https://postfiles.pstatic.net/food.jpg" {
		t.Errorf("Payload = %s", loc.Payload)
	}
	if loc.Method != structure.ResolutionClassBased {
		t.Errorf("Method = %s, want %s", loc.Method, structure.ResolutionClassBased)
	}
}

func TestFindBodyImageLinkData(t *testing.T) {
	// 이스케이프된 data-linkdata에서 src를 복원해야 함
	html := `<html><body>
		<div class="se-main-container">
			<div class="se-component se-image">
				<div class="se-module se-module-image">
					<a class="se-module-image-link" data-linkdata="{&quot;src&quot;: &quot;https://postfiles.pstatic.net/cafe.jpg&quot;}"></a>
				</div>
			</div>
		</div>
	</body></html>`

	loc := FindBodyImage(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("본문 이미지를 찾지 못했습니다")
	}
	if loc.Payload != "https://postfiles.pstatic.net/cafe.jpg" {
		t.Errorf("Payload = %s", loc.Payload)
	}
	if loc.Method != structure.ResolutionLinkDataBased {
		t.Errorf("Method = %s, want %s", loc.Method, structure.ResolutionLinkDataBased)
	}
}

func TestFindBodyImageExcludesNoise(t *testing.T) {
	// 아이콘/프로필/스티커는 건너뛰고 첫 일반 이미지를 반환해야 함
	html := `<html><body>
		<div class="se-main-container">
			<img src="https://example.com/profile.png">
			<img src="https://simg.pstatic.net/static/map.png">
			<img src="https://storep-phinf.pstatic.net/sticker.png">
			<img src="https://postfiles.pstatic.net/real-photo.jpg">
		</div>
	</body></html>`

	loc := FindBodyImage(docFromHTML(t, html))
	if loc == nil {
		t.Fatal("본문 이미지를 찾지 못했습니다")
	}
	if loc.Payload != "https://postfiles.pstatic.net/real-photo.jpg" {
		t.Errorf("Payload = %s", loc.Payload)
	}
}

func TestFindFirstParagraph(t *testing.T) {
	html := `<html><body>
		<div class="se-main-container">
			<div class="se-quotation-container">업체로부터 제공받았습니다</div>
			<p class="se-text-paragraph">오늘은 맛집을 소개합니다</p>
		</div>
	</body></html>`

	text, selector := FindFirstParagraph(docFromHTML(t, html))
	// 문단 + 인용구 순서로 합쳐져야 함
	want := "오늘은 맛집을 소개합니다 업체로부터 제공받았습니다"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if selector != ".se-text-paragraph" {
		t.Errorf("selector = %q", selector)
	}
}

func TestFindFirstParagraphSkipsShortText(t *testing.T) {
	html := `<html><body>
		<div class="se-main-container">
			<p class="se-text-paragraph">안녕</p>
		</div>
	</body></html>`

	if text, _ := FindFirstParagraph(docFromHTML(t, html)); text != "" {
		t.Errorf("text = %q, want 빈 문자열", text)
	}
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "흐림 썸네일",
			in:   "https://postfiles.pstatic.net/img.jpg?type=w80_blur",
			want: "https://postfiles.pstatic.net/img.jpg?type=w773",
		},
		{
			name: "썸네일 호스트",
			in:   "https://mblogthumb-phinf.pstatic.net/img.jpg?type=w210",
			want: "https://postfiles.pstatic.net/img.jpg?type=w773",
		},
		{
			name: "충분히 큰 이미지는 유지",
			in:   "https://mblogthumb-phinf.pstatic.net/img.jpg?type=w966",
			want: "https://postfiles.pstatic.net/img.jpg?type=w966",
		},
		{
			name: "빈 URL",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeImageURL(tc.in)
			if got != tc.want {
				t.Errorf("NormalizeImageURL(%q) = %q, want %q", tc.in, got, tc.want)
			}

			// 정규화는 멱등이어야 함
			if again := NormalizeImageURL(got); again != got {
				t.Errorf("정규화가 멱등이 아닙니다: %q -> %q", got, again)
			}
		})
	}
}
