package main

import "github.com/chuongmep/adapy/cmd"

func main() {
	cmd.Execute()
}
