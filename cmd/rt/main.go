package main

import "routine/cmd/rt/root"

func main() {
	root.Execute()
}
