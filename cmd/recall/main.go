package main

import "recall/internal/cli"

func main() {
	cli.Execute()
}
