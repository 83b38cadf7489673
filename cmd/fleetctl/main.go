package main

import "fleet_maintenance/internal/cli"

func main() {
	cli.Execute()
}
