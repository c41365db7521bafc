package main

import "github.com/mouse-blink/lintsweep/cmd"

func main() {
	cmd.Execute()
}
