package main

import "github.com/notegist-labs/notegist-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
