// Package testutil provides testing utilities for studentdir.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic student records.
//
// # Random Record Generation
//
//	rng := testutil.NewRNG(seed)
//	recs := rng.Records(100, 1)        // ids 1..100, random names and majors
//	rec := rng.Record(42)              // a single record with id 42
//	major := rng.Major()               // one of testutil.Majors
//
// The same seed always yields the same sequence.
package testutil
