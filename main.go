package main

import "backoffice/cmd"

func main() {
	cmd.Execute()
}
