package main

import "workshop/cmd"

func main() {
	cmd.Execute()
}
