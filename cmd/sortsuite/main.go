package main

import (
	"os"

	ss "nickandperla.net/sort_suite"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		ss.Logger().Errorf("%v", err)
		os.Exit(1)
	}
}
