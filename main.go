package main

import "github.com/Alijeyrad/sorriso_backend/cmd"

func main() {
	cmd.Execute()
}
