package main

import "hygrometer/internal/cli"

// set by the linker
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
