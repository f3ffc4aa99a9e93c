package main

import "github.com/ellawright/folio/cmd"

func main() {
	cmd.Execute()
}
