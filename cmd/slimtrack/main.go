package main

import "slimtrack/internal/cli"

func main() {
	cli.Execute()
}
