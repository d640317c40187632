package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/tetroterm/pkg"
)

var (
	s    *pkg.Server
	done = make(chan bool)
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	pkg.InitLog(cfg.LogPath, "SERVER: ")
	log.Println("Server started")

	s, err = pkg.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		log.Printf("Listening at port %s", cfg.SshPort)
		if err := s.ListenAndServe(); err != nil {
			log.Printf("Server stopped: %s", err)
		}
		done <- true
	}()

	// Keep the server run
	sigc := make(chan os.Signal, 1)
	// Wait for teminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		s.Close()
	}()

	<-done
}
