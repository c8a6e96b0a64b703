package main

import "github.com/julienpequegnot/devpub/cmd"

func main() {
	cmd.Execute()
}
