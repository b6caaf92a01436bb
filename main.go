// main is the entry point for the ftracker CLI.
package main

import (
	"github.com/huangsam/ftracker/cmd"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/iocache"
)

func main() {
	cmd.SetHistoryManager(iocache.Manager)

	err := cmd.Execute()
	iocache.CloseHistory()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
