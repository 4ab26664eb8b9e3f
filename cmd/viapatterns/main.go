package main

import "github.com/OpenTraceLab/kicad-via-patterns/cmd/viapatterns/cmd"

func main() {
	cmd.Execute()
}
