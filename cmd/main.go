package main

import (
	"log"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/config"
	setupServer "github.com/Badsnus/club-directory/internal/adapters/controller/http/setup"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()
	s, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	setupServer.Setup(s)

	s.Start()
}
