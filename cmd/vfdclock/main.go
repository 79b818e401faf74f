package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/host/v3"

	"github.com/cavac/vfdclock"
	"github.com/cavac/vfdclock/conn"
)

func main() {
	scanFlag := flag.Bool("scan", false, "Scan the I²C buses and exit")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	if *scanFlag {
		scan()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	plugin := vfdclock.New()
	rctx := vfdclock.NewRunContext(ctx)

	info := plugin.Info()
	fmt.Printf("%s %s by %s: %s\n", info.Name, info.Version, info.Author, info.Description)

	if err := plugin.Init(rctx); err != nil {
		fatal(err)
	}
	defer plugin.Cleanup(rctx)

	fmt.Println("hit control-c to stop...")
	plugin.Run(rctx)
}

func scan() {
	for bus := 0; bus <= 1; bus++ {
		found, err := conn.Scan(bus)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bus %d: %v\n", bus, err)
			continue
		}
		for _, addr := range found {
			fmt.Printf("bus %d: device at 0x%02X\n", bus, addr)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
