package main

import "github.com/RyanBlaney/scale-sonar/cmd"

func main() {
	cmd.Execute()
}
