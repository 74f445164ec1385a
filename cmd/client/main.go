package main

import "safetrip/cmd/client/cmd"

func main() {
	cmd.Execute()
}
