// Package studentdir provides an embedded, in-memory directory of student
// records.
//
// Records (id, name, major) live in a primary mapping keyed by id and in a
// secondary index keyed by major, so "all students in major X" needs no
// linear scan. Both structures are updated together under one lock: every
// record appears in exactly one major bucket, the one matching its current
// major, and buckets never outlive their last member.
//
// # Quick Start
//
//	ctx := context.Background()
//	dir, err := studentdir.New()
//	if err != nil {
//	    panic(err)
//	}
//
//	_, err = dir.Save(ctx, studentdir.Record{ID: 1234, Name: "Jack", Major: "Knitting"})
//
// Change a major; the index follows:
//
//	_, err = dir.Save(ctx, studentdir.Record{ID: 1234, Name: "Jim", Major: "Ninjitsu"})
//	dir.ListByMajor("Knitting") // []
//	dir.ListMajors()            // ["Ninjitsu"]
//
// Let the directory allocate ids:
//
//	rec, err := dir.Save(ctx, studentdir.Record{Name: "Jill", Major: "Knitting"})
//	fmt.Println(rec.ID)
//
// # Errors
//
// Get and Delete return ErrNotFound for unknown ids. Save returns
// *ErrInvalidRecord for records with a blank name or major. A failed call
// leaves the directory unchanged.
//
// # Observability
//
// Use WithLogger for structured logging (log/slog) and WithMetricsCollector
// for metrics. Package prommetrics exports metrics to Prometheus.
package studentdir
