package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/internal/logging"
	"github.com/wippyai/fpgaio/pointnn"
	"github.com/wippyai/fpgaio/resource"
	"github.com/wippyai/fpgaio/session"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to TOML config file")
		simulate    = flag.Bool("sim", false, "Use the WASM simulator instead of /dev/mem")
		list        = flag.Bool("list", false, "List the register map and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		trace       = flag.Bool("trace", false, "Print every register access in hex to stderr")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *simulate {
		cfg.Device.Simulate = true
	}

	if *list {
		listRegisters(os.Stdout, pointnn.Registers())
		return
	}

	log, flush, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	atexit.Register(flush)

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		atexit.Fatalf("Error: -i needs a terminal")
	}

	var opts []session.Option
	if *trace && !*interactive {
		opts = append(opts, session.WithObserver(traceObserver(os.Stderr)))
	}
	if err := pointnn.Configure(cfg.Device, opts...); err != nil {
		atexit.Fatalf("Error: %v", err)
	}
	sess, err := pointnn.TakeSession()
	if err != nil {
		atexit.Fatalf("Error: %v", err)
	}
	atexit.Register(func() {
		if err := sess.Close(); err != nil {
			log.Error("close session", zap.Error(err))
		}
	})

	if *interactive {
		err = runInteractive(sess, cfg.Device)
	} else {
		err = runQuadrants(os.Stdout, sess)
	}
	if err != nil {
		atexit.Fatalf("Error: %v", err)
	}
	atexit.Exit(0)
}

func listRegisters(w io.Writer, m *resource.Map) {
	fmt.Fprintf(w, "%-32s %6s %5s  %-12s %s\n", "REGISTER", "OFFSET", "WIDTH", "TYPE", "ACCESS")
	m.Each(func(d resource.Descriptor) bool {
		fmt.Fprintf(w, "%-32s %6d %5d  %-12s %s\n", d.Name, d.Offset, d.Width, d.Type, d.Capability)
		return true
	})
}

// traceObserver prints session events as hex dumps.
func traceObserver(w io.Writer) session.Observer {
	return session.ObserverFunc(func(e session.Event) {
		switch e.Type {
		case session.EventRead, session.EventWrite:
			fmt.Fprintf(w, "[%s] %s: % X\n", e.Type, e.Register, e.Data)
		default:
			fmt.Fprintf(w, "[%s] session %s\n", e.Type, e.Session)
		}
	})
}
