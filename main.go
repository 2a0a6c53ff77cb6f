package main

import (
	"os"

	"github.com/vipcxj/intervals/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
