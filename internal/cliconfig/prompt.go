package cliconfig

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/pkg/log"
)

// ResolveGrid prompts the operator for every grid parameter not already
// resolved by flag, env, or file, in the fixed prompt order. A blank input
// resolves to 0.0 — and that silent default is written to the audit log so
// the trail shows where the zeros came from. Non-numeric input re-prompts
// until a valid float or a blank line is given.
//
// Logs the fully assembled grid box once, before any docking begins.
func ResolveGrid(cfg *Config, in io.Reader, out io.Writer, logger log.Logger) error {
	r := bufio.NewReader(in)
	prompted := false
	for _, name := range domain.GridParamNames {
		if cfg.GridResolved[name] {
			continue
		}
		if !prompted {
			fmt.Fprintln(out, "Please enter the grid box coordinates and sizes.")
			prompted = true
		}
		v, defaulted, err := promptFloat(r, out, "Enter "+name)
		if err != nil {
			return err
		}
		if defaulted {
			logger.Info("grid parameter defaulted", log.String("param", name), log.Float64("value", 0))
		}
		if err := cfg.Grid.Set(name, v); err != nil {
			return err
		}
		cfg.GridResolved[name] = true
	}
	logger.Info("grid box settings", log.String("grid", cfg.Grid.String()))
	return nil
}

// promptFloat reads one parameter: blank resolves to 0.0 (defaulted=true),
// anything non-numeric is rejected and re-prompted.
func promptFloat(r *bufio.Reader, out io.Writer, prompt string) (value float64, defaulted bool, err error) {
	for {
		fmt.Fprintf(out, "%s: ", prompt)
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				// Operator closed stdin; treat like a blank input.
				return 0, true, nil
			}
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, true, nil
		}
		v, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a numeric value.")
			continue
		}
		return v, false, nil
	}
}
