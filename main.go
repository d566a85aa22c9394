package main

import "github.com/meinhoongagan/edumate/cmd"

func main() {
	cmd.Execute()
}
