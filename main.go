package main

import "nathanbeddoewebdev/hue/cmd"

func main() {
	cmd.Execute()
}
