package main

import "github.com/mik-tf/mdtodocu/cmd"

func main() {
	cmd.Execute()
}
