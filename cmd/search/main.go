// Command search opens the search page on its own, without the sidebar.
package main

import (
	"fmt"
	"os"

	"synapsetalk/frontend"
	"synapsetalk/internal/navigation"
	"synapsetalk/internal/shell"
)

func main() {
	err := shell.Run(frontend.Assets, shell.Options{Standalone: navigation.PageSearch})
	if err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}
