// Command catalogctl inspects the category directory of a running catalog service.
//
// Usage:
//
//	catalogctl tree [--parent 2]
//	catalogctl branch 2
//	catalogctl validate
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(dialCatalog).Execute(); err != nil {
		os.Exit(1)
	}
}
