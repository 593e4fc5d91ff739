// Package main is the entry point for the instantsaver application.
package main

import (
	"github.com/instantsaver/instantsaver/cmd"
	"github.com/instantsaver/instantsaver/config"
	"github.com/instantsaver/instantsaver/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
