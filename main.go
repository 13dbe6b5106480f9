package main

import "github.com/jjtimmons/resite/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
