package main

import (
	"fmt"
	"os"

	"synapsetalk/frontend"
	"synapsetalk/internal/shell"
)

func main() {
	if err := shell.Run(frontend.Assets, shell.Options{}); err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}
