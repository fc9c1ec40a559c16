package main

import (
	"derkit/cmd/derkit/cmd"
)

func main() {
	cmd.Execute()
}
