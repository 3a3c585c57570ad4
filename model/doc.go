// Package model defines the core types used throughout studentdir.
//
// # Identity
//
//   - ID: primary key of a student record (uint32). Zero means "unset" and
//     asks the store to allocate a fresh id on save.
//
// # Data
//
//   - Record: a student (id, name, major). Major is the secondary index key.
//
// Records compare by ID only. Two records with different ids but identical
// names and majors are distinct students and coexist in the same bucket.
package model
