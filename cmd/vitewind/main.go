package main

import (
	"os"

	"github.com/schmitthub/vitewind/internal/vitewind"
)

func main() {
	os.Exit(vitewind.Main())
}
