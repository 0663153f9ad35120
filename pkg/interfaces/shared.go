package _interface

import (
	"net/http"

	"github.com/kmsong-dev/nbsf-go/pkg/configs"
)

// Service는 외부 자원 접근이 필요한 서비스들의 공통 구성입니다
type Service struct {
	Config *configs.EnvConfig
	Client *http.Client
}

// ServiceContainer는 초기화된 서비스들을 모아 라우트에 전달합니다
type ServiceContainer struct {
	SearchService  SearchService
	AnalyzeService AnalyzeService
	OCRRepository  OCRRepository
}
