package main

import (
	cmd "github.com/membank/membank/cmd/membank-cli/modules"
)

func main() {
	cmd.Execute()
}
