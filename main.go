package main

import "github.com/John-Colvin/YAIDIP/cmd"

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
