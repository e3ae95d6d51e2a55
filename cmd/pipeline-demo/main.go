package main

import (
	"os"

	"github.com/eugenenazirov/pipeline-demo/internal/application"
)

var exit = os.Exit

func main() {
	exit(application.Run(os.Args[1:], os.Stdout, os.Stderr))
}
