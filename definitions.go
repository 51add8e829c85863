// Package mii holds the Linux MII ioctl ABI shared by the register tools:
// the request codes and the control record the kernel reads and fills in.
package mii

import "strconv"

// Request is an MII ioctl request code as defined in linux/sockios.h.
type Request uint32

const (
	RequestGetPHY Request = 0x8947 // SIOCGMIIPHY
	RequestGetReg Request = 0x8948 // SIOCGMIIREG
	RequestSetReg Request = 0x8949 // SIOCSMIIREG
)

func (r Request) String() string {
	switch r {
	case RequestGetPHY:
		return "SIOCGMIIPHY"
	case RequestGetReg:
		return "SIOCGMIIREG"
	case RequestSetReg:
		return "SIOCSMIIREG"
	default:
		return "Request(0x" + strconv.FormatUint(uint64(r), 16) + ")"
	}
}

// IsWrite returns true if the request modifies a PHY register.
func (r Request) IsWrite() bool { return r == RequestSetReg }

// IoctlData is the control record of MII requests, struct mii_ioctl_data in linux/mii.h.
// It is placed in the union of a struct ifreq, right after the interface name.
// All fields are in host byte order.
type IoctlData struct {
	PHYID  uint16
	RegNum uint16
	ValIn  uint16
	ValOut uint16
}

const (
	// SizeIoctlData is the size of [IoctlData] in bytes.
	SizeIoctlData = 8
	// OffsetIoctlData is the byte offset of [IoctlData] inside a struct ifreq.
	OffsetIoctlData = 16
)
