package main

import "github.com/user/pwa-builder/cmd"

func main() {
	cmd.Execute()
}
