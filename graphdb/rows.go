// SPDX-License-Identifier: MIT

package graphdb

import (
	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/core"
)

// BatchSize is the number of rows per UNWIND statement.
const BatchSize = 1000

// Row is one UNWIND parameter map.
type Row = map[string]any

// PersonRows returns one row per vertex in sorted address order.
func PersonRows(g *core.Graph, res *connectivity.Result, runID string) []Row {
	ids := g.Vertices()
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		team, ok := res.ComponentOf(id)
		if !ok {
			team = -1
		}
		rows = append(rows, Row{
			"address":   id,
			"team":      int64(team),
			"connector": res.IsConnector(id),
			"run_id":    runID,
		})
	}

	return rows
}

// SentRows returns one row per distinct sent pair, ordered by sender then
// recipient.
func SentRows(g *core.Graph) []Row {
	rows := make([]Row, 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		for _, to := range g.Sent(from) {
			rows = append(rows, Row{"from": from, "to": to})
		}
	}

	return rows
}

// Batches splits rows into consecutive chunks of at most size rows.
// A non-positive size yields a single chunk.
func Batches(rows []Row, size int) [][]Row {
	if len(rows) == 0 {
		return nil
	}
	if size <= 0 || size >= len(rows) {
		return [][]Row{rows}
	}
	out := make([][]Row, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}

	return out
}
