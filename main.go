package main

import (
	"os"

	"github.com/leonardinius/loxlite/cmd"
)

func main() {
	app := cmd.NewLoxApp()
	os.Exit(app.Main(os.Args[1:]))
}
