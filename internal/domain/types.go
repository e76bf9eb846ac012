package domain

import (
	"time"
)

type (
	// DependencyStatus represents the health status of a dependency
	DependencyStatus struct {
		Status       DependencyCheckStatus `json:"status"`
		State        string                `json:"state,omitempty"`
		ResponseTime float32               `json:"response_time_ms"`
		LastChecked  time.Time             `json:"last_checked"`
		Error        string                `json:"error,omitempty"`
	}

	// LivenessResult contains liveness check results
	LivenessResult struct {
		OverallStatus LivenessResponseStatus `json:"status"`
		Uptime        float32                `json:"uptime_seconds"`
	}

	// ReadinessResult contains readiness check results
	ReadinessResult struct {
		OverallStatus ReadinessResponseStatus `json:"status"`
		Broker        DependencyStatus        `json:"broker"`
		Worker        DependencyStatus        `json:"worker"`
	}
)
