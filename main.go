package main

import "github.com/hhfp/household-projector/cmd"

func main() {
	cmd.Execute()
}
