package main

import (
	"os"

	"github.com/i18ngate/i18ngate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
