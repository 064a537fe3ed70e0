// Command slidepath prints trombone slide positions and lip corrections for
// a sequence of pitches.
//
// Usage:
//
//	slidepath [-m method] [-instrument profile.yaml] <pitch>...
//	slidepath [-m method] -midi melody.mid [-channel n]
//	slidepath -serve [-addr :8080]
//
// Output, one line per note:
//
//	Bb3	5th-0.137
//	B3	4th-0.137
//
// Exit status is 0 on success, 1 on runtime errors (unreachable pitch,
// unreadable file) and 2 on usage errors (unknown method, malformed pitch,
// octave outside the instrument, no pitches).
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/slidepath/config"
	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/format"
	"github.com/katalvlaran/slidepath/midifile"
	"github.com/katalvlaran/slidepath/optimize"
	"github.com/katalvlaran/slidepath/pitch"
	"github.com/katalvlaran/slidepath/server"
	"github.com/katalvlaran/slidepath/slide"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// releaseVersion is set via ldflags during build.
var releaseVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "slidepath: ", 0)

	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()

	fs := flag.NewFlagSet("slidepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		methodName = fs.String("m", cfg.Method, "objective: distance, direction, gliss or legato")
		profile    = fs.String("instrument", cfg.InstrumentPath, "instrument profile (YAML); default Bb tenor trombone")
		midiPath   = fs.String("midi", "", "read pitches from a Standard MIDI File instead of arguments")
		channel    = fs.Int("channel", midifile.AllChannels, "MIDI channel to read (0-15); -1 reads all")
		serve      = fs.Bool("serve", false, "run the HTTP API instead of the command line")
		addr       = fs.String("addr", cfg.Addr, "listen address for -serve")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: slidepath [-m method] [-instrument file] [-midi file] <pitch>...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	// 1) Method before anything else.
	method, err := cost.ParseMethod(*methodName)
	if err != nil {
		logger.Println(err)

		return exitUsage
	}

	// 2) Instrument.
	cfg.InstrumentPath = *profile
	inst, err := cfg.Instrument()
	if err != nil {
		logger.Println(err)

		return exitError
	}

	if *serve {
		if dotenvErr != nil {
			logger.Println("no .env file found, using environment variables")
		}
		cfg.Addr = *addr

		return serveHTTP(cfg, inst, method, logger)
	}

	// 3) Pitches, from a MIDI file or from the arguments.
	var labels []string
	var notes []pitch.Pitch
	if *midiPath != "" {
		if fs.NArg() > 0 {
			logger.Println("pitch arguments cannot be combined with -midi")

			return exitUsage
		}
		notes, err = midifile.ReadFile(*midiPath, midifile.WithChannel(*channel))
		if err != nil {
			logger.Println(err)

			return exitError
		}
		for _, p := range notes {
			labels = append(labels, p.String())
		}
	} else {
		labels = fs.Args()
		if len(labels) == 0 {
			fs.Usage()

			return exitUsage
		}
		for _, tok := range labels {
			p, err := inst.ParsePitch(tok)
			if err != nil {
				logger.Println(err)

				return exitUsage
			}
			notes = append(notes, p)
		}
	}

	// 4) Solve and print; nothing reaches stdout unless every note succeeded.
	sol, err := optimize.Plan(inst, notes, optimize.WithMethod(method))
	if err != nil {
		logger.Println(err)

		return exitError
	}
	var out bytes.Buffer
	if err := format.Write(&out, labels, sol); err != nil {
		logger.Println(err)

		return exitError
	}
	if _, err := out.WriteTo(stdout); err != nil {
		logger.Println(err)

		return exitError
	}

	return exitOK
}

// serveHTTP blocks serving the API until the listener fails.
func serveHTTP(cfg *config.Config, inst slide.Instrument, method cost.Method, logger *log.Logger) int {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(inst, method, logger)

	if cfg.SentryDSN != "" {
		flush, err := srv.InitSentry(cfg.SentryDSN, cfg.Environment, releaseVersion)
		if err != nil {
			logger.Printf("failed to initialize Sentry: %v", err)
		} else {
			logger.Printf("Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer flush()
		}
	}

	logger.Printf("listening on %s (instrument %s, default method %s)", cfg.Addr, inst.Name, method)
	if err := srv.Router().Run(cfg.Addr); err != nil {
		logger.Println(err)

		return exitError
	}

	return exitOK
}
