package main

import (
	"os"

	"connect-export/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
