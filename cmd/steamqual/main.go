package main

import (
	"github.com/questgate/steamqual/internal/cli"
)

func main() {
	cli.Execute()
}
