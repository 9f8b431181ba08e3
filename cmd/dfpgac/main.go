// Command dfpgac compiles DHDL source into a hex-encoded bitstream.
package main

import "github.com/Arachnid/dfpga/pkg/cmd"

func main() {
	cmd.Execute()
}
