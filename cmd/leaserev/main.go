package main

import "github.com/danuwp/leaserev/internal/cli"

func main() {
	cli.Execute()
}
