package main

import "atomc/cmd"

func main() {
	cmd.Execute()
}
