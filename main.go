package main

import "rental-server/cmd"

func main() {
	cmd.Execute()
}
