package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benjivesterby/go-fwint/fwint"
	"github.com/benjivesterby/go-fwint/internal/logging"
	"github.com/benjivesterby/go-fwint/rsasmall"
	"github.com/urfave/cli/v2"
)

func newGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "radix",
			Value: 10,
			Usage: "Radix of numbers read and printed (2 to 36)",
		},
		&cli.StringFlag{
			Name:    "seed",
			Usage:   "Seed for a deterministic random generator (default: system RNG)",
			EnvVars: []string{"FWINT_SEED"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log debug messages",
		},
		&cli.BoolFlag{
			Name:  "json-log",
			Usage: "Write log records as JSON",
		},
	}
}

func confidenceFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "confidence",
		Aliases: []string{"c"},
		Value:   rsasmall.DefaultConfidence,
		Usage:   "Number of rounds of randomized primality tests",
		EnvVars: []string{"FWINT_CONFIDENCE"},
	}
}

func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Usage:    "Path to the JSON key file",
		EnvVars:  []string{"FWINT_KEY_FILE"},
		Required: true,
	}
}

func newCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "prime",
			Usage:     "Test a number for primality",
			ArgsUsage: "<n>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "test",
					Aliases: []string{"t"},
					Value:   "bpsw",
					Usage:   "Primality test: bpsw, fermat, lucas, rabin-miller or solovay-strassen",
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "Run every test and print one verdict per test",
				},
				confidenceFlag(),
			},
			Action: CheckPrime,
		},
		{
			Name:  "genprime",
			Usage: "Generate a random probable prime",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "bits",
					Aliases:  []string{"b"},
					Usage:    "Bit length of the prime",
					Required: true,
				},
				confidenceFlag(),
			},
			Action: GeneratePrime,
		},
		{
			Name:  "keygen",
			Usage: "Generate a key pair and write it to a key file",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "bits",
					Aliases:  []string{"b"},
					Usage:    "Bit length of the modulus",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "out",
					Aliases:  []string{"o"},
					Usage:    "Output path for the JSON key file",
					EnvVars:  []string{"FWINT_KEY_FILE"},
					Required: true,
				},
				confidenceFlag(),
			},
			Action: GenerateKeyPair,
		},
		{
			Name:      "encrypt",
			Usage:     "Compute v^d mod n with the private exponent of a key file",
			ArgsUsage: "<v>",
			Flags:     []cli.Flag{keyFlag()},
			Action:    Encrypt,
		},
		{
			Name:      "decrypt",
			Usage:     "Compute v^e mod n with the public exponent of a key file",
			ArgsUsage: "<v>",
			Flags:     []cli.Flag{keyFlag()},
			Action:    Decrypt,
		},
		{
			Name:      "modpow",
			Usage:     "Compute x^e mod m",
			ArgsUsage: "<x> <e> <m>",
			Action:    ModPow,
		},
		{
			Name:      "jacobi",
			Usage:     "Compute the Jacobi symbol (a/b)",
			ArgsUsage: "<a> <b>",
			Action:    Jacobi,
		},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "fwint",
		Usage:     "Fixed-width integer arithmetic, primality and RSA-small tools",
		Flags:     newGlobalFlags(),
		Commands:  newCommands(),
		Writer:    stdout,
		ErrWriter: stderr,
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Logger configured from the global flags, writing to the error stream.
func newLogger(cCtx *cli.Context) logging.Logger {
	level := slog.LevelInfo
	if cCtx.Bool("verbose") {
		level = slog.LevelDebug
	}
	return logging.NewWriter(cCtx.App.ErrWriter, level, cCtx.Bool("json-log"))
}

// Random generator from --seed, or nil for the system RNG.
func newRand(cCtx *cli.Context) fwint.Rand {
	if seed := cCtx.String("seed"); seed != "" {
		return fwint.NewShakeRand([]byte(seed))
	}
	return nil
}
