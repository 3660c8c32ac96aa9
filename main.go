package main

import "github.com/streambinder/lyrika/cmd"

func main() {
	cmd.Execute()
}
