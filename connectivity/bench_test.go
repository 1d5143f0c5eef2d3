package connectivity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/commgraph/builder"
	"github.com/katalvlaran/commgraph/connectivity"
)

// BenchmarkAnalyze_RandomSparse measures a sparse, mostly connected graph.
func BenchmarkAnalyze_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(2000, 0.002))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = connectivity.Analyze(ctx, g)
	}
}

// BenchmarkAnalyze_DeepPath measures the explicit stack on a long chain.
func BenchmarkAnalyze_DeepPath(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(50000))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = connectivity.Analyze(ctx, g)
	}
}
