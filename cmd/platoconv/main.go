package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/platoconv/internal/app"
	"github.com/hyperifyio/platoconv/internal/convert"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath  string
		outputPath string
		from       string
		to         string
		assistant  string
		configPath string
		envFile    string
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the input transcript ('-' or empty for stdin)")
	flag.StringVar(&outputPath, "output", "", "Path to write the converted transcript ('-' or empty for stdout)")
	flag.StringVar(&from, "from", "", "Input format: html, text or cmj")
	flag.StringVar(&to, "to", "", "Output format: html, text, cmj or pdf")
	flag.StringVar(&assistant, "assistant", os.Getenv("PLATOCONV_ASSISTANT"), "Configured machine name that marks the assistant speaker in markup")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&envFile, "env", ".env", "Optional dotenv file loaded before env overrides")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.LoadEnvFiles(envFile); err != nil {
		log.Warn().Err(err).Msg("env file load failed; continuing")
	}

	cfg := app.Config{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		From:          from,
		To:            to,
		AssistantName: assistant,
		Verbose:       verbose,
	}

	fc, err := app.LoadFileConfig(configPath)
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(2)
	}
	app.ApplyFileConfig(fc, &cfg)
	app.ApplyEnvToConfig(&cfg)

	if cfg.From == "" || cfg.To == "" {
		fmt.Fprintln(os.Stderr, "both -from and -to are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := app.Run(cfg); err != nil {
		log.Error().Err(err).Msg("conversion failed")
		// Bad arguments get a distinct exit code so wrapping tools can tell
		// caller bugs from I/O failures.
		if errors.Is(err, convert.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
