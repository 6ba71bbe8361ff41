package main

import (
	"os"

	"github.com/DeepakJD1226/Consultancy/internal/cli"
)

// @title           R.K. Textiles API
// @version         1.0
// @description     Order, inventory, billing and mill tracking API for a textile trading business.
// @host            localhost:5000
// @BasePath        /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
