// Command mii-dump prints all 32 Clause 22 registers of an Ethernet PHY
// through the Linux MII ioctl interface.
//
// Usage:
//
//	mii-dump [-v] [-decode] <ifname> [phy-id] [page no]
//
// When a non-zero page is given it is written to the page select register 0x1f
// before the dump and page 0 is restored afterwards.
package main

import (
	"os"

	"github.com/soypat/mii/internal/cli"
)

func main() {
	os.Exit(cli.RunDump(cli.HostEnv(), os.Args))
}
