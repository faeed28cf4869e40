package main

import "github.com/kumolabai/specsync/cmd"

func main() {
	cmd.Execute()
}
