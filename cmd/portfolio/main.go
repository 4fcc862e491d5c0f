// Command portfolio serves the portfolio site or renders it to static files.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
