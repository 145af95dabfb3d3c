package main

import "github.com/ToBlick/gobasis/cmd"

func main() {
	cmd.Execute()
}
