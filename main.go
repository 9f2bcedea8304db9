package main

import "github.com/inovacc/linkr/cmd"

func main() {
	cmd.Execute()
}
