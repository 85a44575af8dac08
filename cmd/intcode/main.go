// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

// parsePhases splits a comma separated list of phase settings.
func parsePhases(text string) (phases []int64, err error) {
	for _, word := range strings.Split(text, ",") {
		var phase int64
		phase, err = strconv.ParseInt(strings.TrimSpace(word), 10, 64)
		if err != nil {
			return
		}
		phases = append(phases, phase)
	}
	return
}

func loadProgram(path string) (prog *cpu.Program, err error) {
	if path == "-" {
		return cpu.ParseProgram(os.Stdin)
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return cpu.ParseProgram(inf)
}

func main() {
	var program string
	var config string
	var dialect string
	var padding int
	var ascii bool
	var input string
	var output string
	var disassemble bool
	var amp string
	var feedback bool
	var netSize int
	var paint int64
	var maze bool
	var scriptFile string
	var lang string
	var verbose bool

	flag.StringVar(&program, "p", "", "Intcode program file, or - for stdin")
	flag.StringVar(&config, "config", "", "TOML configuration file")
	flag.StringVar(&dialect, "dialect", "relative", "Machine dialect: basic, io, or relative")
	flag.IntVar(&padding, "pad", 0, "Zero cells appended to the program")
	flag.BoolVar(&ascii, "ascii", false, "ASCII tape encoding")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the program, do not execute")
	flag.StringVar(&amp, "amp", "", "Search amplifier phase orderings, e.g. 0,1,2,3,4")
	flag.BoolVar(&feedback, "feedback", false, "Amplifiers run in a feedback loop")
	flag.IntVar(&netSize, "net", 0, "Run a packet network of N nodes")
	flag.Int64Var(&paint, "paint", 0, "Run a hull painting robot, starting on a panel of this color")
	flag.BoolVar(&maze, "maze", false, "Explore a maze with a repair droid")
	flag.StringVar(&scriptFile, "script", "", "Starlark script to run")
	flag.StringVar(&lang, "lang", "", "Message language, e.g. en-US")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = LoadConfig(config)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Explicit flags override the config file.
	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
		switch fl.Name {
		case "dialect":
			cfg.Dialect = dialect
		case "pad":
			cfg.Padding = padding
		case "ascii":
			if ascii {
				cfg.Encoding = "ascii"
			} else {
				cfg.Encoding = "decimal"
			}
		case "net":
			cfg.Network.Size = netSize
		case "lang":
			cfg.Language = lang
		case "v":
			cfg.Verbose = verbose
		case "d":
			set[fl.Name] = disassemble
		case "maze":
			set[fl.Name] = maze
		}
	})
	cfg.Mode = selectMode(cfg, set)

	if len(cfg.Language) != 0 {
		if err := translate.SetLanguage(cfg.Language); err != nil {
			log.Fatalf("%v: %v", cfg.Language, err)
		}
	}

	job := &Job{
		Input:    os.Stdin,
		Output:   os.Stdout,
		Feedback: feedback,
		Color:    paint,
		Script:   scriptFile,
	}

	if len(program) != 0 {
		var err error
		job.Program, err = loadProgram(program)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}

	if len(amp) != 0 {
		var err error
		job.Phases, err = parsePhases(amp)
		if err != nil {
			log.Fatalf("%v: %v", amp, err)
		}
	}

	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		job.Input = inf
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		job.Output = ouf
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg, job)
	if err != nil {
		name := program
		if cfg.Mode == MODE_SCRIPT {
			name = scriptFile
		}
		log.Fatalf("%v: %v", name, err)
	}
}
