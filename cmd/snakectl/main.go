package main

import (
	"github.com/pcowley/snake-spectacle/internal/cli"
)

func main() {
	cli.Execute()
}
