package main

import "hunterlog/cmd/hl/root"

func main() {
	root.Execute()
}
