// Command langdetect-corpusgen builds the embedded n-gram corpus database
// consumed by the langdetect service, from a tab-separated sentence dump
package main

import (
	"fmt"
	"os"

	"langdetect/cmd/langdetect-corpusgen/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
