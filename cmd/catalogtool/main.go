package main

import "i18n-catalog/internal/cli"

func main() {
	cli.Execute()
}
