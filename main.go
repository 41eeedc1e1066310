package main

import "github.com/dzjyyds666/cfua/cmd"

func main() {
	cmd.Execute()
}
