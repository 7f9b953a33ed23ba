package main

import "rentdesk/commands"

func main() {
	commands.Execute()
}
