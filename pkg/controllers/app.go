package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	responseDto "github.com/kmsong-dev/nbsf-go/pkg/types/dtos/responses"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

// Health는 서버 상태 확인 핸들러입니다
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		system := utils.GetSystemStatus()

		response := responseDto.HealthResponse{
			Status:    "ok",
			Time:      time.Now(),
			Version:   configs.AppVersion,
			Uptime:    time.Since(startTime).String(),
			GoVersion: GoVersion,
			System:    &system,
		}
		return c.JSON(response)
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
