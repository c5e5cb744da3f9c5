package main

import "github.com/dbsmedya/goeclat/cmd/goeclat/cmd"

func main() {
	cmd.Execute()
}
