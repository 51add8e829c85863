package phy_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soypat/mii"
	"github.com/soypat/mii/internal/ltesto"
	"github.com/soypat/mii/phy"
)

func TestNewPHYID(t *testing.T) {
	tests := []struct {
		prtad, devad int
		want         phy.PHYID
		c45          bool
		port, dev    uint8
	}{
		{prtad: 0, devad: 0, want: 0x0000, port: 0},
		{prtad: 3, devad: 0, want: 0x0003, port: 3},
		{prtad: 31, devad: 0, want: 0x001f, port: 31},
		{prtad: 0, devad: 1, want: 0x8001, c45: true, port: 0, dev: 1},
		{prtad: 1, devad: 3, want: 0x8023, c45: true, port: 1, dev: 3},
		{prtad: 31, devad: 31, want: 0x83ff, c45: true, port: 31, dev: 31},
		{prtad: 0x1f, devad: 7, want: 0x83e7, c45: true, port: 31, dev: 7},
	}
	for _, tc := range tests {
		id := phy.NewPHYID(tc.prtad, tc.devad)
		if id != tc.want {
			t.Errorf("NewPHYID(%d,%d)=0x%04x, want 0x%04x", tc.prtad, tc.devad, id, tc.want)
			continue
		}
		if id.IsClause45() != tc.c45 {
			t.Errorf("0x%04x IsClause45()=%v", id, id.IsClause45())
		}
		if id.PortAddr() != tc.port || id.DevAddr() != tc.dev {
			t.Errorf("0x%04x port=%d dev=%d, want port=%d dev=%d", id, id.PortAddr(), id.DevAddr(), tc.port, tc.dev)
		}
	}
}

func TestDumpNoPage(t *testing.T) {
	var bus ltesto.Bus
	const id = phy.PHYID(3)
	var want []ltesto.Op
	var wantRegs [phy.NumClause22Regs]uint16
	for reg := uint16(0); reg < phy.AddrPageSelect; reg++ {
		bus.Set(id, 0, reg, 0x100+reg)
		wantRegs[reg] = 0x100 + reg
	}
	for reg, v := range wantRegs {
		want = append(want, ltesto.ReadOp(id, uint16(reg), v))
	}
	var regs [phy.NumClause22Regs]uint16
	phy.Dump(&bus, id, 0, &regs, func(err error) { t.Error(err) })
	if diff := cmp.Diff(want, bus.Ops); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	if regs != wantRegs {
		t.Errorf("dumped %v, want %v", regs, wantRegs)
	}
}

func TestDumpPaged(t *testing.T) {
	var bus ltesto.Bus
	const id = phy.PHYID(3)
	const page = 2
	bus.Set(id, 0, 0x10, 0xaaaa)
	bus.Set(id, page, 0x10, 0xbbbb)
	var regs [phy.NumClause22Regs]uint16
	phy.Dump(&bus, id, page, &regs, func(err error) { t.Error(err) })

	want := []ltesto.Op{ltesto.WriteOp(id, phy.AddrPageSelect, page)}
	for reg := uint16(0); reg < phy.NumClause22Regs; reg++ {
		want = append(want, ltesto.ReadOp(id, reg, bus.Get(id, page, reg)))
	}
	want[1+phy.AddrPageSelect].Value = page // page select register reads back the page.
	want = append(want, ltesto.WriteOp(id, phy.AddrPageSelect, 0))
	if diff := cmp.Diff(want, bus.Ops); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	if regs[0x10] != 0xbbbb {
		t.Errorf("dump read page 0 register: 0x%04x", regs[0x10])
	}
	if bus.Page(id) != 0 {
		t.Error("page not restored")
	}
}

func TestDumpContinuesOnError(t *testing.T) {
	errBus := errors.New("bus error")
	bus := ltesto.Bus{
		FailValue: 0xdead,
		Fail: func(op ltesto.Op) error {
			if op.Write || op.Reg%2 == 1 {
				return errBus
			}
			return nil
		},
	}
	var regs [phy.NumClause22Regs]uint16
	var errs []error
	phy.Dump(&bus, 0, 1, &regs, func(err error) { errs = append(errs, err) })
	reads, writes := bus.Count()
	if reads != phy.NumClause22Regs || writes != 2 {
		t.Fatalf("reads=%d writes=%d", reads, writes)
	}
	if len(errs) != 2+phy.NumClause22Regs/2 {
		t.Fatalf("got %d errors", len(errs))
	}
	var aerr *phy.AccessError
	if !errors.As(errs[0], &aerr) || !aerr.Write || aerr.Reg != phy.AddrPageSelect {
		t.Errorf("first error should be page select write: %v", errs[0])
	}
	if !errors.Is(errs[1], errBus) {
		t.Errorf("error does not wrap bus error: %v", errs[1])
	}
	if regs[1] != 0xdead {
		t.Errorf("failed read should keep bus value, got 0x%04x", regs[1])
	}
}

func TestBusMDIO(t *testing.T) {
	var bus ltesto.Bus
	mdio := phy.BusMDIO{Bus: &bus}
	if err := mdio.Write(1, 3, 0x1000, 0xbeef); err != nil {
		t.Fatal(err)
	}
	if v := bus.Get(0x8023, 0, 0x1000); v != 0xbeef {
		t.Fatalf("clause 45 write landed elsewhere: 0x%04x", v)
	}
	v, err := mdio.Read(1, 3, 0x1000)
	if err != nil || v != 0xbeef {
		t.Fatal(v, err)
	}
	_, err = mdio.Read(32, 0, 0)
	if !errors.Is(err, mii.ErrInvalidAddr) {
		t.Fatal("expected invalid address error", err)
	}
}

func TestDevice(t *testing.T) {
	var bus ltesto.Bus
	const addr = 1
	bus.Set(addr, 0, phy.AddrBMCR, uint16(phy.BMCRANEnable|phy.BMCRFullDuplex))
	bus.Set(addr, 0, phy.AddrBMSR, uint16(phy.BMSRLinkStatus|phy.BMSRANComplete|phy.BMSRANCap))
	bus.Set(addr, 0, 2, 0x0022)
	bus.Set(addr, 0, 3, 0x1622)
	bus.Set(addr, 0, phy.AddrANAR, uint16(phy.ANARSelector8023|phy.ANAR100Full|phy.ANAR100Half|phy.ANAR10Full))
	bus.Set(addr, 0, phy.AddrANLPAR, uint16(phy.ANARSelector8023|phy.ANAR100Half|phy.ANAR10Full))

	var dev phy.Device
	if err := dev.ConfigureAs22(phy.BusMDIO{Bus: &bus}, 32); err == nil {
		t.Fatal("expected error for address 32")
	}
	if err := dev.ConfigureAs22(nil, addr); err == nil {
		t.Fatal("expected error for nil bus")
	}
	if err := dev.ConfigureAs22(phy.BusMDIO{Bus: &bus}, addr); err != nil {
		t.Fatal(err)
	}
	if dev.IsClause45() || dev.PHYAddr() != addr {
		t.Fatal("bad configuration")
	}
	up, err := dev.IsLinkUp()
	if err != nil || !up {
		t.Fatal("expected link up", err)
	}
	mode, err := dev.NegotiatedLink()
	if err != nil {
		t.Fatal(err)
	}
	if mode != phy.Link100HDX || mode.SpeedMbps() != 100 || mode.IsFullDuplex() {
		t.Errorf("negotiated %s", mode)
	}
	ident, err := dev.Ident()
	if err != nil {
		t.Fatal(err)
	}
	want := phy.Ident{OUI: 0x22<<6 | 0x1622>>10, Model: 0x22, Revision: 0x2}
	if ident != want {
		t.Errorf("ident %+v, want %+v", ident, want)
	}
}

func TestBMCRForcedSpeed(t *testing.T) {
	tests := []struct {
		ctl  phy.BMCR
		want int
	}{
		{0, 10},
		{phy.BMCRSpeed100, 100},
		{phy.BMCRSpeed1000, 1000},
		{phy.BMCRSpeed1000 | phy.BMCRSpeed100, 0},
		{phy.BMCRSpeed100 | phy.BMCRFullDuplex, 100},
	}
	for _, tc := range tests {
		if got := tc.ctl.ForcedSpeedMbps(); got != tc.want {
			t.Errorf("BMCR 0x%04x: speed %d, want %d", uint16(tc.ctl), got, tc.want)
		}
	}
}
