package main

import "github.com/userbinhq/userbin/internal/cli"

func main() {
	cli.Execute()
}
