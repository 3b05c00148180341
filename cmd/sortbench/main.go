package main

import "github.com/dbsmedya/sortbench/cmd/sortbench/cmd"

func main() {
	cmd.Execute()
}
