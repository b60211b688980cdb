// Package aggregate collapses bit-addressed located variables into
// fixed-size boolean groups of eight, replacing each group's members with a
// single synthetic declaration.
package aggregate
