package main

import (
	"fmt"

	"github.com/benjivesterby/go-fwint/fwint"
	"github.com/benjivesterby/go-fwint/rsasmall"
	"github.com/urfave/cli/v2"
)

// Parse the positional arguments as integers in the selected radix.
func parseArgs(cCtx *cli.Context, names ...string) ([]*fwint.Int, error) {
	if cCtx.NArg() != len(names) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(names), cCtx.NArg())
	}
	radix := cCtx.Int("radix")
	vv := make([]*fwint.Int, len(names))
	for i, name := range names {
		v, err := fwint.Parse(cCtx.Args().Get(i), radix)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		vv[i] = v
	}
	return vv, nil
}

// Print a value in the selected radix.
func printInt(cCtx *cli.Context, x *fwint.Int) error {
	s, err := x.Text(cCtx.Int("radix"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, s)
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "probably prime"
	}
	return "composite"
}

func CheckPrime(cCtx *cli.Context) error {
	vv, err := parseArgs(cCtx, "n")
	if err != nil {
		return err
	}
	names := []string{cCtx.String("test")}
	if cCtx.Bool("all") {
		names = fwint.TestNames
	}
	log := newLogger(cCtx)
	rng := newRand(cCtx)
	for _, name := range names {
		pt, err := fwint.NewTestByName(name, cCtx.Int("confidence"), rng)
		if err != nil {
			return err
		}
		log.Debug("running primality test", "test", pt.Name(), "bits", vv[0].BitLen())
		ok, err := pt.Test(vv[0])
		if err != nil {
			return fmt.Errorf("%s test failed: %w", pt.Name(), err)
		}
		if len(names) > 1 {
			fmt.Fprintf(cCtx.App.Writer, "%s: %s\n", pt.Name(), verdict(ok))
		} else {
			fmt.Fprintln(cCtx.App.Writer, verdict(ok))
		}
	}
	return nil
}

func GeneratePrime(cCtx *cli.Context) error {
	bits := cCtx.Int("bits")
	p, err := fwint.GeneratePseudoPrime(bits, cCtx.Int("confidence"), newRand(cCtx))
	if err != nil {
		return fmt.Errorf("failed to generate prime: %w", err)
	}
	newLogger(cCtx).Debug("prime generated", "bits", bits)
	return printInt(cCtx, p)
}

func GenerateKeyPair(cCtx *cli.Context) error {
	log := newLogger(cCtx)
	kp, err := rsasmall.GenerateKeys(cCtx.Int("bits"), newRand(cCtx),
		rsasmall.WithConfidence(cCtx.Int("confidence")),
		rsasmall.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}
	path := cCtx.String("out")
	if err := SaveKey(path, kp); err != nil {
		return err
	}
	log.Info("key file written", "path", path)
	return printInt(cCtx, kp.Modulus())
}

func Encrypt(cCtx *cli.Context) error {
	return applyKey(cCtx, (*rsasmall.KeyPair).Encrypt)
}

func Decrypt(cCtx *cli.Context) error {
	return applyKey(cCtx, (*rsasmall.KeyPair).Decrypt)
}

func applyKey(cCtx *cli.Context, f func(*rsasmall.KeyPair, *fwint.Int) (*fwint.Int, error)) error {
	vv, err := parseArgs(cCtx, "value")
	if err != nil {
		return err
	}
	kp, err := LoadKey(cCtx.String("key"))
	if err != nil {
		return err
	}
	r, err := f(kp, vv[0])
	if err != nil {
		return err
	}
	return printInt(cCtx, r)
}

func ModPow(cCtx *cli.Context) error {
	vv, err := parseArgs(cCtx, "base", "exponent", "modulus")
	if err != nil {
		return err
	}
	r, err := vv[0].ModPow(vv[1], vv[2])
	if err != nil {
		return err
	}
	return printInt(cCtx, r)
}

func Jacobi(cCtx *cli.Context) error {
	vv, err := parseArgs(cCtx, "a", "b")
	if err != nil {
		return err
	}
	j, err := fwint.Jacobi(vv[0], vv[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, j)
	return nil
}
