package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// healthHandler collects system-level metrics alongside the session count.
func (s *Server) healthHandler(c echo.Context) error {
	runtime := map[string]interface{}{
		"uptime":     time.Since(s.startedAt).Round(time.Second).String(),
		"start_time": s.startedAt.Format(time.RFC3339),
	}
	if hInfo, err := host.Info(); err == nil {
		runtime["os"] = hInfo.OS
		runtime["platform"] = hInfo.Platform
		runtime["arch"] = hInfo.KernelArch
		runtime["hostname"] = hInfo.Hostname
	}

	resp := map[string]interface{}{
		"status":   "online",
		"sessions": s.sessions.Len(),
		"provider": s.cfg.CompletionProvider,
		"runtime":  runtime,
	}

	// Interval 0 compares against the previous call instead of blocking.
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		resp["cpu"] = map[string]interface{}{
			"usage_percent": fmt.Sprintf("%.2f%%", cpuPercent[0]),
		}
	}
	if v, err := mem.VirtualMemory(); err == nil {
		resp["memory"] = map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		}
	}
	if d, err := disk.Usage("/"); err == nil {
		resp["disk"] = map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
			"free_gb":      fmt.Sprintf("%.2f GB", float64(d.Free)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		}
	}

	return c.JSON(http.StatusOK, resp)
}
