// Package colkit provides typed, read-oriented column containers for
// tabular result data, plus the result-set machinery to populate them
// from a database/sql source and export them as JSON, CSV or Arrow.
//
// The core lives in pkg/column: three column variants over different
// backing-store shapes (slice, bit-packed bitset, doubly linked list)
// sharing one bounds-checked access contract and column metadata.
// pkg/recordset assembles columns into result sets, and cmd/colkit is a
// small query/export command line tool on top.
package colkit
