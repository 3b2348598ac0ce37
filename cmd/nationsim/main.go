package main

import "github.com/andrescamacho/nationsim-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
