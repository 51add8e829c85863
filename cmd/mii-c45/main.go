// Command mii-c45 reads or writes a single Ethernet PHY register through the
// Linux MII ioctl interface.
//
// Usage:
//
//	mii-c45 [-v] <ifname> <prtad> <devad> <addr> [value]
//
// A non-zero devad addresses MMD devad of the Clause 45 PHY at port prtad,
// a zero devad addresses Clause 22 PHY prtad. Numbers are decimal or 0x prefixed
// hexadecimal. Giving value writes it to the register, otherwise the register is read.
package main

import (
	"os"

	"github.com/soypat/mii/internal/cli"
)

func main() {
	os.Exit(cli.RunC45(cli.HostEnv(), os.Args))
}
