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

// Command compare-logs checks that two snapshot logs hold the same values,
// line by line, within a tolerance.
//
//	compare-logs [--tolerance 1e-5] log1 log2
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raymenzel/fc-transport/compare"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "compare-logs:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var tol float64
	cmd := &cobra.Command{
		Use:           "compare-logs <log1> <log2>",
		Short:         "Compares two snapshot logs within a tolerance.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := compare.Files(args[0], args[1], tol)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			logger.Info("logs match", "lines", n, "tolerance", tol)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&tol, "tolerance", "t", compare.DefaultTolerance, "largest absolute difference allowed")
	return cmd
}
