package main

import "github.com/zfogg/streamline/internal/cmd"

func main() {
	cmd.Execute()
}
