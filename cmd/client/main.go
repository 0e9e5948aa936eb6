package main

import "travelmate/cmd/client/cmd"

func main() {
	cmd.Execute()
}
