package cli

import (
	"fmt"
	"io"

	"github.com/soypat/mii/internal"
	"github.com/soypat/mii/phy"
)

const dumpArgs = "<ifname> [phy-id] [page no]"

// RunDump prints the 32 Clause 22 registers of a PHY one per line and returns
// the process exit code. args[0] is the program name. Numbers are decimal.
// A non-zero page is selected before the dump and page 0 restored after it.
func RunDump(env Env, args []string) int {
	prog, fs := env.flagSet(args, "mii-dump")
	verbose := fs.Bool("v", false, "trace register requests on stderr")
	decode := fs.Bool("decode", false, "print a summary of the standard registers after the dump")
	err := fs.Parse(args[min(1, len(args)):])
	if err != nil || fs.NArg() < 1 {
		return env.usage(prog, dumpArgs, fs, err)
	}
	pos := fs.Args()
	ifname := pos[0]
	phyID, page := 0, 0
	if len(pos) > 1 {
		phyID = internal.Atoi(pos[1])
	}
	if len(pos) > 2 {
		page = internal.Atoi(pos[2])
	}

	bus, code := env.connect(ifname, env.logger(*verbose))
	if code != ExitOK {
		return code
	}
	defer bus.Close()

	var regs [phy.NumClause22Regs]uint16
	phy.Dump(bus, phy.PHYID(phyID), uint16(page), &regs, env.reportAccess)
	for _, v := range regs {
		fmt.Fprintf(env.Stdout, "0x%04x\n", v)
	}
	if *decode {
		env.decode(bus, phyID)
	}
	return ExitOK
}

// decode prints the state held in the standard registers of a Clause 22 PHY.
func (env Env) decode(bus phy.RegisterBus, phyID int) {
	if phyID < 0 || phyID > 31 {
		fmt.Fprintf(env.Stderr, "decode: phy-id %d is not a Clause 22 address\n", phyID)
		return
	}
	var dev phy.Device
	err := dev.ConfigureAs22(phy.BusMDIO{Bus: bus}, uint8(phyID))
	if err == nil {
		err = printSummary(env.Stdout, &dev)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "decode: %v\n", err)
	}
}

func printSummary(w io.Writer, dev *phy.Device) error {
	ctl, err := dev.BasicControl()
	if err != nil {
		return err
	}
	status, err := dev.BasicStatus()
	if err != nil {
		return err
	}
	ident, err := dev.Ident()
	if err != nil {
		return err
	}
	up, err := dev.IsLinkUp()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bmcr: 0x%04x autoneg:%s\n", uint16(ctl), onOff(ctl.AutoNegotiationEnabled()))
	fmt.Fprintf(w, "bmsr: 0x%04x link:%s\n", uint16(status), upDown(up))
	fmt.Fprintf(w, "oui:0x%06x model:0x%02x rev:0x%x\n", ident.OUI, ident.Model, ident.Revision)
	if !ctl.AutoNegotiationEnabled() {
		duplex := "half"
		if ctl&phy.BMCRFullDuplex != 0 {
			duplex = "full"
		}
		fmt.Fprintf(w, "mode: forced %dM %s\n", ctl.ForcedSpeedMbps(), duplex)
		return nil
	}
	mode, err := dev.NegotiatedLink()
	if err != nil {
		fmt.Fprintf(w, "mode: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "mode: %s\n", mode)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func upDown(b bool) string {
	if b {
		return "up"
	}
	return "down"
}
