package main

import "fmt"

type versionCmd struct{}

func (versionCmd) Run(rc *runContext) error {
	_, err := fmt.Fprintf(rc.stdout, "Graph Works version %s\n", Version)
	return err
}
