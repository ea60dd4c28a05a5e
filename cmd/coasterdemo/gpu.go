//go:build gpu

package main

import (
	"log"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // register the GPU accelerator
)

func init() {
	if a := gg.Accelerator(); a != nil {
		log.Printf("GPU accelerator: %s", a.Name())
	}
}
