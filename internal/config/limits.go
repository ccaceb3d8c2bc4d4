package config

const (
	MaxEvaluateBytes = 1 << 20 // 1MB
	MaxBatchBytes    = 8 << 20 // 8MB
)
