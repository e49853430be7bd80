package main

import (
	"github.com/techhome/techhome/internal/config"
	"github.com/techhome/techhome/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
