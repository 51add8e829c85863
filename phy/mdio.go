package phy

import (
	"strconv"

	"github.com/soypat/mii"
)

var _ MDIOBus = BusMDIO{} // compile time guarantee of interface implementation.

// PHYID is the PHY identifier carried in the MII ioctl control record.
// Clause 22 PHYs are addressed by their bare port address. Clause 45 identifiers
// have the [PHYIDClause45] flag set, the port address in bits 5-9 and the
// MMD device address in bits 0-4. See mdio_phy_id_c45 in linux/mdio.h.
type PHYID uint16

const (
	PHYIDClause45 PHYID = 0x8000 // Clause 45 flag.
	PHYIDPortMask PHYID = 0x03e0 // Clause 45 port address.
	PHYIDDevMask  PHYID = 0x001f // Clause 45 device address.
)

// NewPHYID returns the PHY identifier for a port address and MMD device address.
// A zero devad selects Clause 22 addressing and the identifier is prtad itself
// since MMD 0 is reserved in Clause 45. Arguments are not range checked,
// excess bits are truncated to 16 bits.
func NewPHYID(prtad, devad int) PHYID {
	if devad == 0 {
		return PHYID(prtad)
	}
	return PHYIDClause45 | PHYID(prtad<<5) | PHYID(devad)
}

// IsClause45 returns true if the identifier uses Clause 45 addressing.
func (id PHYID) IsClause45() bool { return id&PHYIDClause45 != 0 }

// PortAddr returns the port address (PHY address on the MDIO bus).
func (id PHYID) PortAddr() uint8 {
	if id.IsClause45() {
		return uint8((id & PHYIDPortMask) >> 5)
	}
	return uint8(id & 0x1f)
}

// DevAddr returns the MMD device address. Always 0 for Clause 22 identifiers.
func (id PHYID) DevAddr() uint8 {
	if id.IsClause45() {
		return uint8(id & PHYIDDevMask)
	}
	return 0
}

// RegisterBus accesses PHY registers by raw [PHYID] the way the Linux MII ioctls do.
type RegisterBus interface {
	// ReadReg reads a 16-bit register. Implementations may return a meaningful
	// value alongside a non-nil error when the access reports failure after
	// filling in the result.
	ReadReg(id PHYID, reg uint16) (value uint16, err error)
	// WriteReg writes a 16-bit value to a register.
	WriteReg(id PHYID, reg, value uint16) error
}

// BusMDIO adapts a [RegisterBus] to the [MDIOBus] interface.
// A zero devAddr uses Clause 22 addressing, Clause 45 otherwise.
type BusMDIO struct {
	Bus RegisterBus
}

// Read reads a PHY register.
func (b BusMDIO) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	id, err := mdioID(phyAddr, devAddr)
	if err != nil {
		return 0xffff, err
	}
	return b.Bus.ReadReg(id, regAddr)
}

// Write writes a PHY register.
func (b BusMDIO) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	id, err := mdioID(phyAddr, devAddr)
	if err != nil {
		return err
	}
	return b.Bus.WriteReg(id, regAddr, value)
}

func mdioID(phyAddr, devAddr uint8) (PHYID, error) {
	if phyAddr > 31 || devAddr > 31 {
		return 0, errInvalidPhyAddr
	}
	return NewPHYID(int(phyAddr), int(devAddr)), nil
}

// AccessError records a failed register access.
type AccessError struct {
	Write bool
	PHY   PHYID
	Reg   uint16
	Err   error
}

func (e *AccessError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return "phy " + op + " phyid=0x" + strconv.FormatUint(uint64(e.PHY), 16) +
		" reg=0x" + strconv.FormatUint(uint64(e.Reg), 16) + ": " + e.Err.Error()
}

func (e *AccessError) Unwrap() error { return e.Err }

var errInvalidPhyAddr error = mii.ErrInvalidAddr
