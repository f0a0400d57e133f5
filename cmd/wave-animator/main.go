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

// Command wave-animator turns a file of fluid snapshots into an animated GIF,
// one frame per time step.
//
//	wave-animator [-o wave.gif] snapshots.csv
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raymenzel/fc-transport/animate"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wave-animator:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:           "wave-animator <csv_file>",
		Short:         "Turns fluid snapshots into gifs.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // main prints them
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := animate.File(args[0], output)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			logger.Info("animation written", "input", args[0], "output", output, "frames", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "wave.gif", "Path to the output gif.")
	return cmd
}
