package main

import "github.com/josephlewis42/which/cmd"

func main() {
	cmd.Execute()
}
