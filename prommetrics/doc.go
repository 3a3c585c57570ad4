// Package prommetrics exports studentdir metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := prommetrics.New(reg)
//	if err != nil {
//	    panic(err)
//	}
//	dir, err := studentdir.New(studentdir.WithMetricsCollector(mc))
package prommetrics
