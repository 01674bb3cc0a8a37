package main

import "github.com/jwebster45206/eldritch-assets/internal/cli"

func main() {
	cli.Execute()
}
