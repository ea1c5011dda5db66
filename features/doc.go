// Package features turns a family union graph into a FeatureTable: one row per
// vertex, one column per structural feature, in a fixed order.
//
// Columns (see Columns):
//
//	node-weight, in-degree, out-degree, degree,
//	closeness-wtd, in-closeness-wtd, out-closeness-wtd,
//	closeness-unwtd, in-closeness-unwtd, out-closeness-unwtd,
//	betweenness-wtd, betweenness-unwtd,
//	first-order-influence-wtd, first-order-influence-unwtd,
//	clustering-coefficient
//
// Lifecycle: NewTable fills every cell with NaN (the null placeholder),
// Compute sets each column exactly once, and the collector freezes the
// table. A frozen table rejects Set with ErrFrozen.
//
// Failure policy: an algorithm error never aborts Compute. The affected column
// stays NaN and a Warning naming the column is returned alongside the table.
package features
