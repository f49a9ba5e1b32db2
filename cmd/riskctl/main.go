package main

import "github.com/JulienRip/riskbanking/cmd/cli"

func main() {
	cli.Execute()
}
