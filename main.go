package main

import "github.com/msomdec/atelier/internal/cmd"

func main() {
	cmd.Execute()
}
