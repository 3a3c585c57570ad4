package studentdir_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/studentdir"
)

// Example demonstrates how the major index follows a record whose major changes.
func Example() {
	ctx := context.Background()

	dir, err := studentdir.New()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := dir.Save(ctx, studentdir.Record{ID: 1234, Name: "Jack", Major: "Knitting"}); err != nil {
		log.Fatal(err)
	}
	fmt.Println(dir.ListMajors())

	if _, err := dir.Save(ctx, studentdir.Record{ID: 1234, Name: "Jim", Major: "Ninjitsu"}); err != nil {
		log.Fatal(err)
	}

	rec, err := dir.Get(1234)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec)
	fmt.Println(len(dir.ListByMajor("Knitting")))
	fmt.Println(dir.ListMajors())
	// Output:
	// [Knitting]
	// Record(1234, "Jim", "Ninjitsu")
	// 0
	// [Ninjitsu]
}

// Example_errors demonstrates the error contract.
func Example_errors() {
	ctx := context.Background()

	dir, err := studentdir.New()
	if err != nil {
		log.Fatal(err)
	}

	err = dir.Delete(ctx, 42)
	fmt.Println(errors.Is(err, studentdir.ErrNotFound))

	_, err = dir.Save(ctx, studentdir.Record{ID: 42, Major: "Knitting"})
	var invalid *studentdir.ErrInvalidRecord
	if errors.As(err, &invalid) {
		fmt.Println(invalid.Field)
	}
	// Output:
	// true
	// name
}

// Example_metrics demonstrates collecting basic metrics.
func Example_metrics() {
	ctx := context.Background()
	metrics := &studentdir.BasicMetricsCollector{}

	dir, err := studentdir.New(studentdir.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}

	_, _ = dir.Save(ctx, studentdir.Record{Name: "Jack", Major: "Knitting"})
	_, _ = dir.Save(ctx, studentdir.Record{Name: "Jill", Major: "Knitting"})

	stats := metrics.GetStats()
	fmt.Println(stats.InsertCount, dir.Len())
	// Output: 2 2
}
