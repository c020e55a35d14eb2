package main

import "github.com/akyairhashvil/morning-stretch/internal/cli"

func main() {
	cli.Execute()
}
