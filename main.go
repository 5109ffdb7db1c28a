package main

import (
	"os"

	"github.com/outage-ua/gpvbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
