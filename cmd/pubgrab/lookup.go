// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Roberthaf/Pub-Grab/internal/cristin"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve an author name to a CRISTIN person ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	client := cristin.New(configFromViper().Registry)

	id, found, err := client.PersonID(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no CRISTIN person matches %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
