package main

import (
	"os"

	"VelRestore/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
