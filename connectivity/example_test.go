package connectivity_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/commgraph/connectivity"
	"github.com/katalvlaran/commgraph/core"
)

// ExampleAnalyze finds two teams, one of them held together by a single person.
func ExampleAnalyze() {
	g := core.NewGraph()
	_ = g.AddEdges("kay@enron.com", []string{"ann@enron.com", "ben@enron.com"})
	_ = g.AddEdge("ann@enron.com", "ben@enron.com")
	_ = g.AddEdge("ben@enron.com", "cy@enron.com")
	_ = g.AddEdge("dee@enron.com", "eve@enron.com")

	res, _ := connectivity.Analyze(context.Background(), g)
	for _, team := range res.Components {
		fmt.Println(team)
	}
	fmt.Println("connectors:", res.Connectors)
	fmt.Println(res.ComponentSize("cy@enron.com"))
	// Output:
	// [ann@enron.com ben@enron.com cy@enron.com kay@enron.com]
	// [dee@enron.com eve@enron.com]
	// connectors: [ben@enron.com]
	// 4
}
