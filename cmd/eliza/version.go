package main

import (
	"fmt"

	// Packages
	version "github.com/dialogik/go-eliza/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Print(version.String(execName()))
	return nil
}
