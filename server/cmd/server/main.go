// Command server runs the Emberveil development server: one area, in-memory
// accounts, no persistence.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/emberveil/server/core"
	"github.com/automoto/emberveil/shared/netconfig"
)

type options struct {
	port      uint
	tickHz    int
	name      string
	version   string
	moveSpeed float64
}

func parseFlags() options {
	var o options
	flag.UintVar(&o.port, "port", netconfig.DefaultPort, "listen port")
	flag.IntVar(&o.tickHz, "tickrate", netconfig.DefaultTickHz, "simulation ticks per second")
	flag.StringVar(&o.name, "name", "Emberveil Dev Server", "name sent in the welcome message")
	flag.StringVar(&o.version, "version", "", "client version to require; empty accepts any")
	flag.Float64Var(&o.moveSpeed, "movespeed", 6.0, "pixels per tick at speed 1.0")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()
	srv := core.NewServer(o.tickHz, o.name, o.version, o.moveSpeed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("[server] stopping")
		srv.Stop()
		// The websocket transport has no shutdown hook.
		os.Exit(0)
	}()

	log.Printf("[server] %q on :%d, %d Hz, version %q", o.name, o.port, o.tickHz, o.version)
	if err := srv.Start(o.port); err != nil {
		log.Fatalf("[server] %v", err)
	}
}
