package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/kmsong-dev/nbsf-go/pkg/controllers"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
)

// SetupSearchRoutes는 검색 관련 라우트를 설정합니다
func SetupSearchRoutes(endpoint string, api fiber.Router, services *_interface.ServiceContainer) {
	// 이미 초기화된 서비스 사용
	api.Get(endpoint, controller.Search(services.SearchService))
	api.Post("/analyze", controller.AnalyzeText(services.AnalyzeService))
}
