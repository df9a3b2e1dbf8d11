package main

import "github.com/osoares/promptforge/internal/commands"

func main() {
	commands.Execute()
}
