package main

import "github.com/ridoystarlord/drizzlegen/cmd"

func main() {
	cmd.Execute()
}
