// Package phy provides Ethernet PHY management via MDIO.
// It supports IEEE 802.3 Clause 22 and Clause 45 register access
// for configuring and monitoring physical layer transceivers.
package phy

import (
	"errors"

	"github.com/soypat/mii"
)

// MDIOBus is a HAL for MDIO bus access supporting both Clause 22 and Clause 45 devices.
// Implementations should use devaddr to select the framing:
//   - devaddr=0: Clause 22 framing (devaddr ignored in transaction)
//   - devaddr>=1: Clause 45 framing (PMA/PMD=1, WIS=2, PCS=3, PHY XS=4, DTE XS=5, AN=7)
//
// Register address range: Clause 22 uses 0-31, Clause 45 uses 0-65535.
// Invalid combinations of devaddr and regAddr may or may not return an error
// depending on the implementation or result in undefined behavior.
type MDIOBus interface {
	// Read reads a 16-bit register from the PHY.
	Read(phyAddr, devAddr uint8, regAddr uint16) (value uint16, err error)
	// Write writes a 16-bit value to a PHY register.
	Write(phyAddr, devAddr uint8, regAddr, value uint16) error
}

type Device struct {
	mdio    MDIOBus
	phyaddr uint8
	// isClause45 is 0 for clause 22 devices and 1 for clause45 devices.
	isClause45 uint8
}

// ConfigureAs22 resets all state of device to be used as a Clause22 device. Does not do a software reset.
func (phy *Device) ConfigureAs22(mdio MDIOBus, phyAddr uint8) error {
	if phyAddr > 31 {
		return errInvalidPhyAddr
	} else if mdio == nil {
		return mii.ErrInvalidConfig
	}
	phy.mdio = mdio
	phy.phyaddr = phyAddr
	phy.isClause45 = 0
	return nil
}

// IsClause45 returns true if the device uses Clause 45 MDIO addressing (extended register access).
func (phy *Device) IsClause45() bool {
	return phy.isClause45 == 1
}

// PHYAddr returns the PHY address on the MDIO bus (0-31).
func (phy *Device) PHYAddr() uint8 {
	return phy.phyaddr
}

// BasicControl reads the Basic Mode Control Register (BMCR, register 0).
func (phy *Device) BasicControl() (BMCR, error) {
	ctl, err := phy.rread(AddrBMCR)
	return BMCR(ctl), err
}

// BasicStatus reads the Basic Mode Status Register (BMSR, register 1).
func (phy *Device) BasicStatus() (BMSR, error) {
	stat, err := phy.rread(AddrBMSR)
	return BMSR(stat), err
}

// ID1 reads the PHY Identifier 1 register (register 2), containing bits 3-18 of the OUI.
func (phy *Device) ID1() (uint16, error) {
	return phy.rread(regPhyId1)
}

// ID2 reads the PHY Identifier 2 register (register 3), containing bits 19-24 of the OUI and model/revision.
func (phy *Device) ID2() (uint16, error) {
	return phy.rread(regPhyId2)
}

// Ident reads both PHY identifier registers.
func (phy *Device) Ident() (Ident, error) {
	id1, err := phy.ID1()
	if err != nil {
		return Ident{}, err
	}
	id2, err := phy.ID2()
	if err != nil {
		return Ident{}, err
	}
	return ParseIdent(id1, id2), nil
}

// Advertisement reads the current Auto-Negotiation Advertisement Register.
func (phy *Device) Advertisement() (ANAR, error) {
	val, err := phy.rread(AddrANAR)
	return ANAR(val), err
}

// LinkPartnerAdvertisement reads what the link partner is advertising (ANLPAR).
func (phy *Device) LinkPartnerAdvertisement() (ANAR, error) {
	val, err := phy.rread(AddrANLPAR)
	return ANAR(val), err
}

// IsLinkUp returns true if link is established.
// BMSR.LinkStatus is latched-low so the register is read twice to get the current state.
func (phy *Device) IsLinkUp() (bool, error) {
	_, _ = phy.BasicStatus()
	status, err := phy.BasicStatus()
	if err != nil {
		return false, err
	}
	return status.LinkUp(), nil
}

// NegotiatedLink returns the auto-negotiated link mode using standard MII registers.
// Returns LinkMode based on ANAR (our advertisement) AND ANLPAR (link partner ability).
// Priority order per IEEE 802.3 Annex 28B.3.
func (phy *Device) NegotiatedLink() (LinkMode, error) {
	// First check if auto-negotiation is complete
	status, err := phy.BasicStatus()
	if err != nil {
		return LinkDown, err
	}
	if !status.AutoNegotiationComplete() {
		return LinkDown, errors.New("auto-negotiation not complete")
	}

	anar, err := phy.Advertisement()
	if err != nil {
		return LinkDown, err
	}
	anlpar, err := phy.LinkPartnerAdvertisement()
	if err != nil {
		return LinkDown, err
	}

	// Common capabilities = what both sides support
	common := anar & anlpar
	return common.LinkMode(), nil
}

// Ident is the decoded content of the PHY identifier registers 2 and 3.
type Ident struct {
	OUI      uint32 // 22 bits of the organizationally unique identifier present in the registers.
	Model    uint8  // 6 bit manufacturer model number.
	Revision uint8  // 4 bit revision number.
}

// ParseIdent decodes the PHY identifier registers.
func ParseIdent(id1, id2 uint16) Ident {
	return Ident{
		OUI:      uint32(id1)<<6 | uint32(id2)>>10,
		Model:    uint8((id2 & 0x3f0) >> 4),
		Revision: uint8(id2 & 0xf),
	}
}

func (phy *Device) rread(regaddr uint16) (uint16, error) {
	return phy.mdio.Read(phy.phyaddr, phy.isClause45, regaddr)
}
