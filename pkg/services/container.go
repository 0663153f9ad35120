package service

import (
	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	"github.com/kmsong-dev/nbsf-go/pkg/db"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	repository "github.com/kmsong-dev/nbsf-go/pkg/repositories"
	"github.com/kmsong-dev/nbsf-go/pkg/services/api"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다.
// DynamoDB 연결에 실패하면 메모리/파일 캐시만으로 동작합니다
func NewServiceContainer() *_interface.ServiceContainer {
	config := configs.GetConfig()

	dynamo, err := db.NewDynamoDBService(config)
	if err != nil {
		utils.Warn("container", "DynamoDB 초기화 실패, 로컬 캐시만 사용: %v", err)
		dynamo = nil
	} else if err := dynamo.CreateTableIfNotExists(); err != nil {
		utils.Warn("container", "OCR 캐시 테이블 준비 실패, 로컬 캐시만 사용: %v", err)
		dynamo = nil
	}

	ocrRepository := repository.NewOCRRepository(config, dynamo)

	return &_interface.ServiceContainer{
		SearchService:  api.NewSearchService(ocrRepository),
		AnalyzeService: api.NewAnalyzeService(),
		OCRRepository:  ocrRepository,
	}
}
