package main

import "github.com/maskins/ticketwatch/internal/cli"

func main() {
	cli.Execute()
}
