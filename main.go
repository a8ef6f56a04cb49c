package main

import "github.com/jsphweid/voicegen/cmd"

func main() {
	cmd.Execute()
}
