package detector

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	"github.com/kmsong-dev/nbsf-go/pkg/services/internal/parser"
	constants "github.com/kmsong-dev/nbsf-go/pkg/types"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
	"github.com/otiai10/gosseract/v2"
)

// OCRImpl는 OCR 서비스 구현체입니다
type OCRImpl struct {
	_interface.Service
	ocrRepo _interface.OCRRepository
	runOCR  func(imagePath string) (string, error)
}

// NewOCRService는 새 OCR 서비스를 생성합니다.
// ocrRepo가 nil이면 캐시 없이 동작합니다
func NewOCRService(ocrRepo _interface.OCRRepository) _interface.OCRService {
	return &OCRImpl{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: constants.IMAGE_TIMEOUT,
			},
			Config: configs.GetConfig(),
		},
		ocrRepo: ocrRepo,
		runOCR:  tesseractOCR,
	}
}

// ExtractTextFromImage는 이미지 URL에서 텍스트를 추출합니다.
// 캐시 키는 정규화된 URL을 사용합니다
func (o *OCRImpl) ExtractTextFromImage(imageURL string) (string, error) {
	if imageURL == "" {
		return "", fmt.Errorf("이미지 URL이 비어 있습니다")
	}

	imageURL = parser.NormalizeImageURL(imageURL)

	// 캐시 확인
	if o.ocrRepo != nil {
		cache, err := o.ocrRepo.GetOCRCache(imageURL)
		if err == nil && cache != nil && cache.TextDetected != "" {
			return cache.TextDetected, nil
		}
	}

	// 이미지 다운로드
	tempFile, err := o.downloadImage(imageURL)
	if err != nil {
		utils.OCRErrorLog("download", imageURL, err.Error())
		return "", fmt.Errorf("이미지 다운로드 실패: %v", err)
	}
	defer os.Remove(tempFile)

	start := time.Now()
	textDetected, err := o.runOCR(tempFile)
	utils.RecordOcrProcessingTime(time.Since(start).Seconds())

	if err != nil {
		utils.OCRErrorLog("tesseract", imageURL, err.Error())
		return "", fmt.Errorf("OCR 실행 실패: %v", err)
	}

	// 개행과 연속 공백을 단일 공백으로 축약
	textDetected = collapseWhitespace(textDetected)

	// 반환 전에 모든 캐시 계층에 기록해 같은 URL의 재다운로드를 막음
	if o.ocrRepo != nil && textDetected != "" {
		if err := o.ocrRepo.SaveOCRCache(imageURL, textDetected, "image"); err != nil {
			utils.Warn("ocr", "OCR 캐시 저장 실패 (%s): %v", imageURL, err)
		}
	}

	return textDetected, nil
}

// collapseWhitespace는 연속된 공백 문자를 단일 공백으로 축약합니다
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// downloadImage는 이미지 URL에서 이미지를 임시 파일로 다운로드합니다
func (o *OCRImpl) downloadImage(imageURL string) (string, error) {
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		imageURL = "https://" + imageURL
	}

	req, err := http.NewRequest("GET", imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("요청 생성 실패: %v", err)
	}

	// 브라우저 에뮬레이션 헤더
	req.Header.Add("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Add("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Add("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("요청 실행 실패: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return "", fmt.Errorf("HTTP 오류 (%d)", resp.StatusCode)
	}

	return utils.SaveResponseToFile(resp, imageURL)
}

// tesseractOCR은 이미지 파일에서 텍스트를 추출합니다.
// 빠른 설정으로 먼저 시도하고, 결과가 미흡하면 정밀 설정으로 재시도합니다
func tesseractOCR(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("kor"); err != nil {
		return "", fmt.Errorf("언어 설정 실패: %v", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("이미지 설정 실패: %v", err)
	}

	// 첫 번째 시도: 자동 세그먼테이션 (빠름)
	client.SetPageSegMode(gosseract.PSM_AUTO_OSD)
	text, err := client.Text()
	if err == nil && isUsableOCRText(text) {
		return strings.TrimSpace(text), nil
	}

	// 두 번째 시도: 단일 블록 + 단어 간격 보존 (정밀)
	client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	client.SetVariable("preserve_interword_spaces", "1")

	text, err = client.Text()
	if err != nil {
		return "", err
	}
	if !isUsableOCRText(text) {
		return "", nil
	}

	return strings.TrimSpace(text), nil
}

// isUsableOCRText는 OCR 출력이 실제 텍스트인지 확인합니다
func isUsableOCRText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	// 디버그 메시지만 있는 경우
	if strings.Contains(text, "Estimating") && len(text) < 100 {
		return false
	}
	return true
}
