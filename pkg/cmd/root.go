// Package cmd implements the dfpgac command-line interface: read DHDL
// source, compile it, and write the hex-encoded bitstream.
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Arachnid/dfpga/pkg/compiler"
)

// rootCmd is the base (and only) command: dfpgac reads one DHDL source
// file and writes one hex-encoded bitstream, with no subcommands.
var rootCmd = &cobra.Command{
	Use:   "dfpgac [INFILE] [OUTFILE]",
	Short: "A compiler for the DHDL hardware description language.",
	Long:  "dfpgac compiles DHDL source into the bit-exact bitstream its target fabric expects.",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runCompile,
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func runCompile(cmd *cobra.Command, args []string) error {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	infile, outfile := "-", "-"
	if len(args) > 0 {
		infile = args[0]
	}

	if len(args) > 1 {
		outfile = args[1]
	}

	text, err := readSource(infile)
	if err != nil {
		return err
	}

	bytes, err := compiler.Compile(infile, text)
	if err != nil {
		return err
	}

	return writeBitstream(outfile, bytes)
}

func readSource(infile string) (string, error) {
	if infile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(infile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", infile, err)
	}

	return string(data), nil
}

func writeBitstream(outfile string, bytes []byte) error {
	encoded := []byte(hex.EncodeToString(bytes))
	encoded = append(encoded, '\n')

	if outfile == "-" {
		_, err := os.Stdout.Write(encoded)
		return err
	}

	return os.WriteFile(outfile, encoded, 0o644)
}

// GetFlag gets an expected boolean flag, or exits if it was never declared.
func GetFlag(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return v
}
