package phy

// Dump reads all [NumClause22Regs] registers of the PHY into dst in ascending order.
// If page is non-zero it is written to the page select register before reading
// and page 0 is written back afterwards.
//
// A failed access does not stop the dump. onErr, if not nil, is called with
// each failure in the order the accesses were issued and dst keeps whatever value the
// bus returned for a failed read.
func Dump(bus RegisterBus, id PHYID, page uint16, dst *[NumClause22Regs]uint16, onErr func(error)) {
	report := func(err error) {
		if err != nil && onErr != nil {
			onErr(err)
		}
	}
	if page != 0 {
		report(bus.WriteReg(id, AddrPageSelect, page))
	}
	for reg := range dst {
		var err error
		dst[reg], err = bus.ReadReg(id, uint16(reg))
		report(err)
	}
	if page != 0 {
		report(bus.WriteReg(id, AddrPageSelect, 0))
	}
}
