/*
 * main.go, part of fc-transport.
 *
 * Copyright 2024 The fc-transport Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command fct-sim advects a density pulse with the flux-corrected transport
// method and writes one snapshot per time step.
//
//	fct-sim [--config sim.toml] [-o wave-output.csv]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	fct "github.com/raymenzel/fc-transport"
	"github.com/raymenzel/fc-transport/snapshot"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fct-sim:", err)
		os.Exit(1)
	}
}

type options struct {
	config string
	output string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "fct-sim",
		Short: "Runs a 1D flux-corrected transport simulation.",
		Long: `Runs a 1D flux-corrected transport simulation of a density pulse
and writes a snapshot (time,x,v,rho per cell) after every time step.

Parameters are read from a TOML or YAML file given with --config; missing
values take their defaults. Outputs ending in .zst or .gz are compressed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "simulation parameters (TOML or YAML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "wave-output.csv", "path to the snapshot file")
	return cmd
}

func run(opts *options, logger *slog.Logger) error {
	conf := fct.DefaultConfig()
	if opts.config != "" {
		var err error
		if conf, err = fct.ParseConfig(opts.config); err != nil {
			return err
		}
	}
	sim, err := fct.NewSimulation(conf)
	if err != nil {
		return err
	}
	w, err := snapshot.NewWriter(opts.output)
	if err != nil {
		return err
	}
	if err := sim.Run(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("simulation done", "output", opts.output, "snapshots", w.Frames(),
		"time", sim.Time, "mass", sim.Mass())
	return nil
}
