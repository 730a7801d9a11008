// Command neoscout ingests the NASA/JPL near-Earth-object catalog and
// close-approach data, links them, and answers inspect/query requests.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
