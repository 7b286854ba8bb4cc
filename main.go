package main

import "github.com/salesops/salesdesk/cmd/salesdesk/commands"

func main() {
	commands.Execute()
}
