package main

import (
	cmd "github.com/posterforge/tendies/cmd/tendies"
)

func main() {
	cmd.Execute()
}
