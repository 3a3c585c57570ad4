// Package store implements RecordStore, the in-memory indexed store behind
// the student directory.
//
// A RecordStore keeps three structures that must always agree:
//
//   - records: the primary mapping id -> Record, the single source of truth
//   - ids: a Roaring Bitmap holding exactly the keys of records, used for
//     id-ordered iteration
//   - byMajor: a multiindex.MultiIndex major -> Records ordered by id
//
// Every Record in records sits in exactly one byMajor bucket, the one keyed
// by its current major, and every bucket member is the current value of a
// Record in records. Save and Delete apply all changes under one write lock,
// so readers never observe a partial update. A failed call changes nothing.
package store
