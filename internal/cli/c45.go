package cli

import (
	"fmt"

	"github.com/soypat/mii/internal"
	"github.com/soypat/mii/phy"
)

const c45Args = "<ifname> <prtad> <devad> <addr> [value]"

// RunC45 reads or writes a single PHY register and returns the process exit code.
// args[0] is the program name. A fifth positional argument selects write mode.
//
// Numbers are decimal or "0x" prefixed hexadecimal. The output line is
//
//	R: phyid:0000 addr:0005 val:0x796d
func RunC45(env Env, args []string) int {
	prog, fs := env.flagSet(args, "mii-c45")
	verbose := fs.Bool("v", false, "trace register requests on stderr")
	err := fs.Parse(args[min(1, len(args)):])
	if err != nil || fs.NArg() < 4 {
		return env.usage(prog, c45Args, fs, err)
	}
	pos := fs.Args()
	ifname := pos[0]
	prtad := internal.ParseNumber(pos[1])
	devad := internal.ParseNumber(pos[2])
	addr := uint16(internal.ParseNumber(pos[3]))
	var val uint16
	write := len(pos) > 4
	if write {
		val = uint16(internal.ParseNumber(pos[4]))
	}

	bus, code := env.connect(ifname, env.logger(*verbose))
	if code != ExitOK {
		return code
	}
	defer bus.Close()

	id := phy.NewPHYID(prtad, devad)
	if write {
		err = bus.WriteReg(id, addr, val)
	} else {
		val, err = bus.ReadReg(id, addr)
	}
	if err != nil {
		env.reportAccess(err)
	}
	dir := 'R'
	if write {
		dir = 'W'
	}
	fmt.Fprintf(env.Stdout, "%c: phyid:%04x addr:%04x val:0x%04x\n", dir, uint16(id), addr, val)
	return ExitOK
}
