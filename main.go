/*
File    : lamina-go/main.go
Project : Lamina interpreter in Go
*/
package main

import (
	"os"

	"github.com/iOS-GM/lamina-go/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
