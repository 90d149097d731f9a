// Package column provides typed, read-oriented column containers for
// tabular result data.
//
// A column owns a shared handle to one backing store plus a MetaColumn
// describing the column's name, declared length, precision, ordinal
// position and data type. Three backing-store shapes are supported, all
// presenting the same contract:
//
//   - SliceColumn: a slice backing store with O(1) row access
//   - BoolColumn: a bit-packed Bitset backing store with an unpacked
//     shadow sequence, since packed bits cannot yield addressable elements
//   - ListColumn: a doubly linked list backing store with bidirectional
//     indexed traversal
//
// Columns are populated through the Data() escape hatch by fetch logic
// (see package recordset) and are not safe for concurrent mutation.
package column
