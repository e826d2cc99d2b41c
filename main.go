package main

import "chroma-launcher/cmd"

func main() {
	cmd.Execute()
}
