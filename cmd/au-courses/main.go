package main

import "github.com/pfrederiksen/au-courses/internal/cli"

func main() {
	cli.Execute()
}
