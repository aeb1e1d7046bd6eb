// Package soaarrow converts the columns of a soa.Table to and from Apache Arrow records.
// Columns with a boolean, integer, floating point or string kind are supported,
// named types with such a kind included.
package soaarrow
