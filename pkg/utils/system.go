package utils

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStatus는 서버 리소스 상태를 나타냅니다
type SystemStatus struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
	MemoryUsedMB  uint64  `json:"memoryUsedMB"`
	MemoryTotalMB uint64  `json:"memoryTotalMB"`
}

// GetSystemStatus는 현재 CPU와 메모리 사용률을 조회합니다
func GetSystemStatus() SystemStatus {
	status := SystemStatus{}

	// CPU 사용률 (100ms 샘플링)
	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		status.CPUPercent = percents[0]
	} else if err != nil {
		Warn("system", "CPU 사용률 조회 실패: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryPercent = vm.UsedPercent
		status.MemoryUsedMB = vm.Used / 1024 / 1024
		status.MemoryTotalMB = vm.Total / 1024 / 1024
	} else {
		Warn("system", "메모리 상태 조회 실패: %v", err)
	}

	return status
}
