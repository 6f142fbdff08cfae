package main

import "github.com/photonforge/waveroute/cmd/waveroute/cmd"

func main() {
	cmd.Execute()
}
