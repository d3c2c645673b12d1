// Package sqlite provides SQLite-backed implementations of the driven
// storage ports: the fluid property database and the analysis history.
//
// The property tables are seeded by an embedded migration with states
// tabulated at the reference pressure; lookups interpolate linearly in
// temperature and, for gases, scale density with the pressure ratio.
package sqlite
