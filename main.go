package main

import "github.com/tilisp/tilisp/cmd"

func main() {
	cmd.Execute()
}
