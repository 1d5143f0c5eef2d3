// Package graphdb exports an analysed communication graph to Neo4j.
//
// Each address becomes a (:Person {address}) node carrying its team id,
// connector flag and the run id; each sent edge becomes a [:SENT]
// relationship. Rows are sent in UNWIND batches of BatchSize.
package graphdb
