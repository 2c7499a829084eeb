package main

import (
	"github.com/sweepproject/sweeprunner/cmd/sweepctl/cmd"
	"github.com/sweepproject/sweeprunner/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
