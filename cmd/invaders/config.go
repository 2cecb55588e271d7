package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// config is the resolved command configuration
// Precedence: flags, then environment (including .env), then defaults
type config struct {
	Keymap string
	Debug  bool
	Mute   bool
	Seed   uint64
}

// loadConfig reads an optional env file, then parses args over the environment
func loadConfig(args []string, envFile string) (config, error) {
	// A missing .env is normal
	_ = godotenv.Load(envFile)

	cfg := config{
		Keymap: os.Getenv("INVADERS_KEYMAP"),
		Debug:  envBool("INVADERS_DEBUG"),
		Mute:   envBool("INVADERS_MUTE"),
	}

	fs := flag.NewFlagSet("invaders", flag.ContinueOnError)
	fs.StringVar(&cfg.Keymap, "keymap", cfg.Keymap, "path to a YAML keymap")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one from the clock")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
