package main

import "bookmark-sync/cmd"

func main() {
	cmd.Execute()
}
