package main

import "github.com/pachcadev/pachca-client/cmd"

func main() {
	cmd.Execute()
}
