package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("contactlabels: %v", err)
		os.Exit(1)
	}
}
