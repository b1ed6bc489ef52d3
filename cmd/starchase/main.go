package main

import (
	"github.com/starchase/starchase-go/internal/cli"
)

func main() {
	cli.Execute()
}
