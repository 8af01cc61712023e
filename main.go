package main

import "github.com/gaurav-prasanna/mdtoc/cmd"

func main() {
	cmd.Execute()
}
