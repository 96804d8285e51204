package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/server"
	"github.com/hailam/psqt/internal/variant"
)

var (
	port       = flag.String("port", readEnv("PSQT_PORT", "8080"), "listen port")
	variants   = flag.String("variants", readEnv("PSQT_VARIANTS", "all"), "comma separated variants to serve")
	debug      = flag.Bool("debug", false, "gin debug mode")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		log.Printf("CPU profiling enabled, writing to %s", profilePath)

		// The server only stops on a signal, so flush the profile there.
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			pprof.StopCPUProfile()
			f.Close()
			os.Exit(0)
		}()
	}

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	set, err := variant.ParseSet(*variants)
	if err != nil {
		log.Fatal(err)
	}

	tables := psqt.Default()
	if set != variant.All() {
		tables = psqt.New(set)
	}

	log.Printf("serving %s on :%s", set, *port)
	if err := server.New(tables).Run(":" + *port); err != nil {
		log.Fatal(err)
	}
}

func readEnv(name string, defaultValue string) string {
	var env = os.Getenv(name)
	if len(env) > 0 {
		return env
	}
	return defaultValue
}
