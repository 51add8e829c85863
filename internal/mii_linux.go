//go:build linux

package internal

import (
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"github.com/soypat/mii"
	"github.com/soypat/mii/phy"
	"golang.org/x/sys/unix"
)

var _ phy.RegisterBus = (*MIISocket)(nil)

// MIISocket issues MII register ioctls for a single network interface
// over a generic datagram socket.
type MIISocket struct {
	fd   int
	name string
	log  *slog.Logger
}

// OpenMII opens the socket used to access PHY registers behind interface name.
// The interface is referenced by name on every request and is not validated here.
func OpenMII(name string) (*MIISocket, error) {
	if len(name) >= unix.IFNAMSIZ {
		return nil, mii.ErrNameTooLong
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_IP)
	if err != nil {
		return nil, fmt.Errorf("mii socket open: %w", err)
	}
	return &MIISocket{fd: fd, name: name}, nil
}

// SetLogger sets the logger used to trace register requests.
func (s *MIISocket) SetLogger(log *slog.Logger) {
	s.log = log
}

// Name returns the interface name requests are issued against.
func (s *MIISocket) Name() string { return s.name }

// ReadReg reads a PHY register with SIOCGMIIREG. The returned value is the
// output field of the control record even if the request failed, in which case it
// is usually zero.
func (s *MIISocket) ReadReg(id phy.PHYID, reg uint16) (uint16, error) {
	ifr := makeifreqMII(s.name, id, reg)
	err := ioctl(s.fd, uintptr(mii.RequestGetReg), ifr.ptr())
	s.traceReq(mii.RequestGetReg, &ifr.MII, err)
	if err != nil {
		return ifr.MII.ValOut, &phy.AccessError{PHY: id, Reg: reg, Err: err}
	}
	return ifr.MII.ValOut, nil
}

// WriteReg writes a PHY register with SIOCSMIIREG.
func (s *MIISocket) WriteReg(id phy.PHYID, reg, value uint16) error {
	ifr := makeifreqMII(s.name, id, reg)
	ifr.MII.ValIn = value
	err := ioctl(s.fd, uintptr(mii.RequestSetReg), ifr.ptr())
	s.traceReq(mii.RequestSetReg, &ifr.MII, err)
	if err != nil {
		return &phy.AccessError{Write: true, PHY: id, Reg: reg, Err: err}
	}
	return nil
}

func (s *MIISocket) Close() error {
	return unix.Close(s.fd)
}

func (s *MIISocket) traceReq(req mii.Request, data *mii.IoctlData, err error) {
	if !LogEnabled(s.log, LevelTrace) {
		return
	}
	val := data.ValOut
	if req.IsWrite() {
		val = data.ValIn
	}
	attrs := []slog.Attr{
		slog.String("ifname", s.name),
		slog.String("req", req.String()),
		slog.Uint64("phyid", uint64(data.PHYID)),
		slog.Uint64("reg", uint64(data.RegNum)),
		slog.Uint64("val", uint64(val)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	LogAttrs(s.log, LevelTrace, "mii:ioctl", attrs...)
}

func ioctl(fd int, request uintptr, argp unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(argp))
	if errno != 0 {
		return os.NewSyscallError("ioctl", errno)
	}
	return nil
}

func makeifreqMII(name string, id phy.PHYID, reg uint16) ifreqMII {
	// Set the name; it will be zero-padded automatically.
	var ifr ifreqMII
	copy(ifr.Name[:unix.IFNAMSIZ-1], name)
	ifr.MII.PHYID = uint16(id)
	ifr.MII.RegNum = reg
	return ifr
}

// ifreqMII is a struct ifreq with the mii_ioctl_data record in its union.
type ifreqMII struct {
	Name [unix.IFNAMSIZ]byte
	MII  mii.IoctlData
	_    [sizeofIfreq - unix.IFNAMSIZ - mii.SizeIoctlData]byte
}

// sizeofIfreq is the size of struct ifreq on 64 bit platforms, the largest of all.
const sizeofIfreq = 40

func (ifr *ifreqMII) ptr() unsafe.Pointer { return unsafe.Pointer(ifr) }
