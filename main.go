package main

import (
	"Ludex/cli"
)

func main() {
	cli.Execute()
}
