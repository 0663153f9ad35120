package detector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/parser"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
)

type fakeOCRRepo struct {
	entries map[string]string
	gets    int
	saves   int
}

func (f *fakeOCRRepo) GetOCRCache(imageURL string) (*structure.OCRCache, error) {
	f.gets++
	if text, ok := f.entries[imageURL]; ok {
		return &structure.OCRCache{ImageURL: imageURL, TextDetected: text}, nil
	}
	return nil, nil
}

func (f *fakeOCRRepo) SaveOCRCache(imageURL string, textDetected string, imageType string) error {
	f.saves++
	f.entries[imageURL] = textDetected
	return nil
}

// 모든 요청을 실패시키는 트랜스포트. 다운로드가 시도되면 테스트가 실패합니다
type failingTransport struct{}

func (failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("네트워크 접근이 발생했습니다: %s", req.URL)
}

func TestExtractTextFromImageCacheHitSkipsDownload(t *testing.T) {
	rawURL := "https://mblogthumb-phinf.pstatic.net/sticker/badge.png?type=w80_blur"
	normalized := parser.NormalizeImageURL(rawURL)

	repo := &fakeOCRRepo{entries: map[string]string{
		normalized: "협찬을 받아 작성한 포스팅입니다",
	}}

	svc := &OCRImpl{
		Service: _interface.Service{Client: &http.Client{Transport: failingTransport{}}},
		ocrRepo: repo,
	}

	text, err := svc.ExtractTextFromImage(rawURL)
	if err != nil {
		t.Fatalf("캐시 히트가 에러를 반환했습니다: %v", err)
	}
	if text != "협찬을 받아 작성한 포스팅입니다" {
		t.Errorf("텍스트 %q가 캐시된 값과 다릅니다", text)
	}
	if repo.gets != 1 {
		t.Errorf("캐시 조회 %d회, 1회여야 합니다", repo.gets)
	}
}

func TestExtractTextFromImageCachesBeforeReturn(t *testing.T) {
	var downloads int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&downloads, 1)
		w.Write([]byte("\x89PNG fake image bytes"))
	}))
	defer server.Close()

	repo := &fakeOCRRepo{entries: map[string]string{}}

	svc := &OCRImpl{
		Service: _interface.Service{Client: server.Client()},
		ocrRepo: repo,
		runOCR: func(imagePath string) (string, error) {
			return "협찬을  받아\n작성한   후기", nil
		},
	}

	imageURL := server.URL + "/badge.png"

	text, err := svc.ExtractTextFromImage(imageURL)
	if err != nil {
		t.Fatalf("추출 실패: %v", err)
	}
	// 개행과 연속 공백은 단일 공백으로 축약되어야 함
	if text != "협찬을 받아 작성한 후기" {
		t.Errorf("텍스트 %q, 공백이 축약되어야 합니다", text)
	}
	// 반환 시점에 캐시 저장이 이미 끝나 있어야 함
	if repo.saves != 1 {
		t.Fatalf("캐시 저장 %d회, 반환 전에 1회 저장되어야 합니다", repo.saves)
	}

	// 같은 URL의 두 번째 호출은 캐시를 사용하고 재다운로드하지 않아야 함
	again, err := svc.ExtractTextFromImage(imageURL)
	if err != nil {
		t.Fatalf("두 번째 추출 실패: %v", err)
	}
	if again != text {
		t.Errorf("캐시된 텍스트 %q가 첫 결과와 다릅니다", again)
	}
	if got := atomic.LoadInt32(&downloads); got != 1 {
		t.Errorf("다운로드 %d회, 1회여야 합니다", got)
	}
}

func TestExtractTextFromImageEmptyURL(t *testing.T) {
	svc := &OCRImpl{
		Service: _interface.Service{Client: &http.Client{}},
	}

	if _, err := svc.ExtractTextFromImage(""); err == nil {
		t.Error("빈 URL은 에러여야 합니다")
	}
}
