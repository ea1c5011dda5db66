// Package results concatenates per-family FeatureTables into one long-format
// result table: one row per (family, node), columns family, node, then every
// feature column in fixed order.
//
// Collect freezes its input tables; the result table itself is immutable and
// exposes read-only accessors only.
package results
