// Package source adapts the three label-data origins onto one contract.
//
// An Adapter produces exactly one Record per invocation: Literal maps
// positional CLI values onto a fixed field list, CSVFile takes the first
// data row of a header-ed file, and Remote runs the inventory lookup
// sequence against Homebox. Only the first record of a multi-record source
// is ever used; everything downstream is origin-agnostic.
package source
