package main

import (
	"github.com/PxGnome/hyperlane-interpreter/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
