package main

import (
	"os"

	"github.com/brimdata/zcut/cmd/zcut/root"
)

func main() {
	os.Exit(root.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
