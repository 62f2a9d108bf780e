package main

import "github.com/ParkerVR/sith/cmd"

func main() {
	cmd.Execute()
}
