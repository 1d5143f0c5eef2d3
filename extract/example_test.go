package extract_test

import (
	"fmt"

	"github.com/katalvlaran/commgraph/extract"
)

func ExampleExtractor_Parse() {
	ex, _ := extract.New(extract.DefaultDomain)
	msg := ex.Parse("To: ignored@enron.com\nFrom: alice@enron.com\nTo: bob@enron.com\nCc: carol@enron.com\n")

	fmt.Println(msg.Sender)
	fmt.Println(msg.Recipients)
	// Output:
	// alice@enron.com
	// [bob@enron.com carol@enron.com]
}
