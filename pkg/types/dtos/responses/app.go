package response

import (
	"time"

	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// HealthResponse는 상태 확인 응답 구조체입니다
type HealthResponse struct {
	Status    string              `json:"status"`
	Time      time.Time           `json:"time"`
	Version   string              `json:"version"`
	Uptime    string              `json:"uptime"`
	GoVersion string              `json:"goVersion"`
	System    *utils.SystemStatus `json:"system,omitempty"`
}
