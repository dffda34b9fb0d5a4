package main

import (
	"github.com/charmbracelet/log"

	"github.com/zostay/go-email-template/tools/preview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
