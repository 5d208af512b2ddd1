package main

import (
	"os"

	"github.com/poxlang/pox/cmd"
)

func main() {
	app := cmd.NewPoxApp()
	os.Exit(app.Main(os.Args[1:]))
}
