package main

import "subscription-sync/cmd"

func main() {
	cmd.Execute()
}
