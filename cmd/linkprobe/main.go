package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cueyang/linkprobe"
	"github.com/cueyang/linkprobe/config"
	"github.com/cueyang/linkprobe/reports"
	"github.com/cueyang/linkprobe/reveal"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(1)
	}
}

func main() {
	flagOnce := flag.Bool("once", false, "run a single scan and exit")
	flagVerbose := flag.Bool("verbose", false, "dump the effective configuration")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Println("usage:", os.Args[0], "path/to/config.yaml")
		os.Exit(1)
	}
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)
	if *flagVerbose {
		spew.Dump(conf)
	}

	logger := linkprobe.NewLogger(conf.Log)
	s, errService := linkprobe.NewService(conf, logger, reveal.Default())
	must("could not start service:", errService)

	if conf.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
			reports.Summary(s.Status(), w)
		})
		go func() {
			logger.Info().Str("addr", conf.Addr).Msg("serving metrics and status")
			errListen := http.ListenAndServe(conf.Addr, mux)
			if errListen != nil {
				logger.Error().Err(errListen).Msg("status server stopped")
			}
		}()
	}

	if *flagOnce {
		_, errScan := s.RunScan()
		if errScan != nil {
			logger.Error().Err(errScan).Msg("scan failed")
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s.RunLoop(ctx)
}
