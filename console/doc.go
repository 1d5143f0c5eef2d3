// Package console holds the text surfaces of commgraph: the interactive
// lookup loop, the connector listing and a run report.
//
// The lookup loop and the connector listing use fixed wording so that a
// run can be scripted and its output diffed.
package console
