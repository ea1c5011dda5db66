// Package pipeline wires the sample provider, graph builder, merger, feature
// computer and collector into batch runs.
//
// Family mode (Run): for every family, build one graph per sample, merge them
// into the family union graph, compute its FeatureTable, then collect all
// tables in family order. Families run concurrently, bounded by
// Config.Workers; each family exclusively owns its graphs and table until
// collection.
//
// Sample mode (RunSamples): every sample graph is featurized on its own and
// handed to a SampleSink together with its family and id.
//
// Failure policy: a construction or merge error aborts its family and, through
// the errgroup, the whole run: families still queued or in flight see a
// canceled context and Run returns the first error with no partial table.
// Callers wanting the surviving families call RunFamily per family instead.
// Feature warnings are logged and counted only.
package pipeline
