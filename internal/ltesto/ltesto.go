// Package ltesto provides test doubles for PHY register access.
package ltesto

import (
	"github.com/soypat/mii/phy"
)

// Op is a register access issued to a [Bus].
type Op struct {
	Write bool
	PHY   phy.PHYID
	Reg   uint16
	Value uint16 // Value written, or value returned by a read.
}

// ReadOp returns the Op recorded for a read.
func ReadOp(id phy.PHYID, reg, value uint16) Op {
	return Op{PHY: id, Reg: reg, Value: value}
}

// WriteOp returns the Op recorded for a write.
func WriteOp(id phy.PHYID, reg, value uint16) Op {
	return Op{Write: true, PHY: id, Reg: reg, Value: value}
}

type regKey struct {
	phy  phy.PHYID
	page uint16
	reg  uint16
}

// Bus is an in-memory register file implementing [phy.RegisterBus].
// Writes to [phy.AddrPageSelect] switch the page subsequent accesses of the
// same PHY land on. Every access is appended to Ops.
type Bus struct {
	Ops []Op
	// Fail, if set, is called before every access. A non-nil error fails the access.
	Fail func(op Op) error
	// FailValue is returned by failed reads.
	FailValue uint16
	Closed    bool

	regs  map[regKey]uint16
	pages map[phy.PHYID]uint16
}

// Set sets the value of a register on a page without recording an access.
func (b *Bus) Set(id phy.PHYID, page, reg, value uint16) {
	if b.regs == nil {
		b.regs = make(map[regKey]uint16)
	}
	b.regs[regKey{phy: id, page: page, reg: reg}] = value
}

// Get returns the value of a register on a page without recording an access.
func (b *Bus) Get(id phy.PHYID, page, reg uint16) uint16 {
	return b.regs[regKey{phy: id, page: page, reg: reg}]
}

// Page returns the page currently selected for the PHY.
func (b *Bus) Page(id phy.PHYID) uint16 {
	return b.pages[id]
}

func (b *Bus) ReadReg(id phy.PHYID, reg uint16) (uint16, error) {
	op := ReadOp(id, reg, 0)
	if b.Fail != nil {
		if err := b.Fail(op); err != nil {
			op.Value = b.FailValue
			b.Ops = append(b.Ops, op)
			return b.FailValue, &phy.AccessError{PHY: id, Reg: reg, Err: err}
		}
	}
	if reg == phy.AddrPageSelect {
		op.Value = b.pages[id]
	} else {
		op.Value = b.Get(id, b.pages[id], reg)
	}
	b.Ops = append(b.Ops, op)
	return op.Value, nil
}

func (b *Bus) WriteReg(id phy.PHYID, reg, value uint16) error {
	op := WriteOp(id, reg, value)
	b.Ops = append(b.Ops, op)
	if b.Fail != nil {
		if err := b.Fail(op); err != nil {
			return &phy.AccessError{Write: true, PHY: id, Reg: reg, Err: err}
		}
	}
	if reg == phy.AddrPageSelect {
		if b.pages == nil {
			b.pages = make(map[phy.PHYID]uint16)
		}
		b.pages[id] = value
		return nil
	}
	b.Set(id, b.pages[id], reg, value)
	return nil
}

func (b *Bus) Close() error {
	b.Closed = true
	return nil
}

// Count returns the number of recorded reads and writes.
func (b *Bus) Count() (reads, writes int) {
	for _, op := range b.Ops {
		if op.Write {
			writes++
		} else {
			reads++
		}
	}
	return reads, writes
}
