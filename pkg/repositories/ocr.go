package repository

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	"github.com/kmsong-dev/nbsf-go/pkg/db"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// 인메모리 캐시 보존 기간
const memoryCacheTTL = 24 * time.Hour

// LayeredOCRRepository는 메모리 -> 파일 -> DynamoDB 순으로 조회하는
// 계층형 OCR 캐시 저장소입니다. 쓰기는 모든 계층에 반영합니다
type LayeredOCRRepository struct {
	ocrCache     map[string]*structure.OCRCache
	ocrCacheLock sync.RWMutex

	cacheDir string
	dynamo   *db.DynamoDBService
}

// NewOCRRepository는 새 OCR 저장소를 생성합니다.
// dynamo가 nil이면 메모리와 파일 계층만 사용합니다
func NewOCRRepository(config *configs.EnvConfig, dynamo *db.DynamoDBService) _interface.OCRRepository {
	cacheDir := config.OCR.CacheDir
	if cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			utils.Warn("ocr-cache", "캐시 디렉토리 생성 실패: %v", err)
			cacheDir = ""
		}
	}

	return &LayeredOCRRepository{
		ocrCache: make(map[string]*structure.OCRCache),
		cacheDir: cacheDir,
		dynamo:   dynamo,
	}
}

// cacheKey는 이미지 URL의 md5 해시를 반환합니다
func cacheKey(imageURL string) string {
	hash := md5.Sum([]byte(imageURL))
	return hex.EncodeToString(hash[:])
}

// GetOCRCache는 이미지 URL에 대한 OCR 캐시를 가져옵니다
func (r *LayeredOCRRepository) GetOCRCache(imageURL string) (*structure.OCRCache, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("이미지 URL이 비어 있습니다")
	}

	// 1차: 메모리 캐시
	r.ocrCacheLock.RLock()
	cache, exists := r.ocrCache[imageURL]
	r.ocrCacheLock.RUnlock()

	if exists {
		if time.Since(cache.CreatedAt) <= memoryCacheTTL {
			return cache, nil
		}
		// 만료된 항목은 제거
		r.ocrCacheLock.Lock()
		delete(r.ocrCache, imageURL)
		r.ocrCacheLock.Unlock()
	}

	// 2차: 파일 캐시
	if fileCache := r.readFileCache(imageURL); fileCache != nil {
		r.promote(imageURL, fileCache)
		return fileCache, nil
	}

	// 3차: DynamoDB
	if r.dynamo != nil {
		dbCache, err := r.dynamo.GetOCRCache(imageURL)
		if err != nil {
			utils.Warn("ocr-cache", "DynamoDB 조회 실패: %v", err)
			return nil, nil
		}
		if dbCache != nil {
			r.promote(imageURL, dbCache)
			r.writeFileCache(imageURL, dbCache)
			return dbCache, nil
		}
	}

	return nil, nil // 캐시 없음 (에러 아님)
}

// SaveOCRCache는 이미지 URL에 대한 OCR 결과를 모든 계층에 저장합니다
func (r *LayeredOCRRepository) SaveOCRCache(imageURL string, textDetected string, imageType string) error {
	if imageURL == "" {
		return fmt.Errorf("이미지 URL이 비어 있습니다")
	}

	if textDetected == "" {
		return fmt.Errorf("OCR 텍스트가 비어 있습니다")
	}

	cache := &structure.OCRCache{
		ImageURL:     imageURL,
		TextDetected: textDetected,
		ImageType:    imageType,
		CreatedAt:    time.Now(),
	}

	r.promote(imageURL, cache)
	r.writeFileCache(imageURL, cache)

	if r.dynamo != nil {
		if err := r.dynamo.SaveOCRCache(cache); err != nil {
			utils.Warn("ocr-cache", "DynamoDB 저장 실패: %v", err)
		}
	}

	return nil
}

// promote는 캐시 항목을 메모리 계층에 올립니다
func (r *LayeredOCRRepository) promote(imageURL string, cache *structure.OCRCache) {
	r.ocrCacheLock.Lock()
	defer r.ocrCacheLock.Unlock()
	r.ocrCache[imageURL] = cache
}

// readFileCache는 파일 캐시에서 항목을 읽습니다
func (r *LayeredOCRRepository) readFileCache(imageURL string) *structure.OCRCache {
	if r.cacheDir == "" {
		return nil
	}

	path := filepath.Join(r.cacheDir, cacheKey(imageURL)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cache structure.OCRCache
	if err := json.Unmarshal(data, &cache); err != nil {
		// 손상된 캐시 파일은 제거
		os.Remove(path)
		return nil
	}

	if !cache.ExpiresAt.IsZero() && time.Now().After(cache.ExpiresAt) {
		os.Remove(path)
		return nil
	}

	return &cache
}

// writeFileCache는 항목을 파일 캐시에 기록합니다
func (r *LayeredOCRRepository) writeFileCache(imageURL string, cache *structure.OCRCache) {
	if r.cacheDir == "" {
		return
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return
	}

	path := filepath.Join(r.cacheDir, cacheKey(imageURL)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		utils.Warn("ocr-cache", "파일 캐시 쓰기 실패: %v", err)
	}
}
