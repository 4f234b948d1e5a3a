package main

import (
	"os"

	"github.com/bnema/course-tutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
