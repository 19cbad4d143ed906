package main

import "github.com/liamg/shark/cmd"

func main() {
	cmd.Execute()
}
