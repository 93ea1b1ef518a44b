package metrics

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks/metrics --outpkg mocks --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, status string)
	RecordHTTPRequestDuration(method, status string, duration time.Duration)
	IncrementPostOperations(operation string, success bool)
	IncrementFieldOperations(operation string, success bool)
	IncrementUploadOperations(operation string, success bool)
	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)
	SetServiceHealth(healthy bool)
}
