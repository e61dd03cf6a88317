package main

import "github.com/declxml/xcsc/cmd"

func main() {
	cmd.Execute()
}
