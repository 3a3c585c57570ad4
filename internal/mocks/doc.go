// Package mocks contains generated mocks for studentdir interfaces.
package mocks

//go:generate mockgen -destination=metrics_collector.go -package=mocks github.com/hupe1980/studentdir MetricsCollector
