package main

import "github.com/theirongolddev/fliptrack/cmd"

func main() {
	cmd.Execute()
}
