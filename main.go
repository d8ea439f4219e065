/*
	Copyright 2023 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/acc-telemetry-bridge/cmd"

func main() {
	cmd.Execute()
}
