package main

import (
	"fmt"
	"os"

	"github.com/krisalay/ttl-cache/cmd/ttlcache/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
