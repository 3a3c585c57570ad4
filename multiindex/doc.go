// Package multiindex provides a generic one-to-many ordered mapping.
//
// A MultiIndex associates each key with a bucket: an ordered, duplicate-free
// set of values. It backs secondary indexes over non-unique attributes, for
// example "all students in major X".
//
// Guarantees:
//   - A key is present only while its bucket is non-empty. Removing the last
//     value of a bucket removes the key.
//   - Lookups of absent keys return empty results, never nil or a panic.
//   - Keys iterate in cmp.Compare order. Values iterate in the order of the
//     compare function given to New, which also defines value equality.
//
// Both levels are B-trees (github.com/google/btree), so ordered iteration
// needs no sorting and updates are O(log n).
//
// A MultiIndex is not safe for concurrent use. Owners such as
// store.RecordStore serialize access with their own lock.
package multiindex
