package main

import "github.com/tidepool-org/roster/cmd/roster/command"

func main() {
	command.Execute()
}
