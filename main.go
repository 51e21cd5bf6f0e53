package main

import "github.com/icmt/icmt/cmd"

func main() {
	cmd.Execute()
}
