package main

import "github.com/wirehttp/wirehttp/cmd/wirehttp/cmd"

func main() {
	cmd.Execute()
}
