//go:build !linux

package internal

import (
	"errors"
	"log/slog"

	"github.com/soypat/mii/phy"
)

type MIISocket struct {
}

func OpenMII(name string) (*MIISocket, error) {
	return nil, errors.ErrUnsupported
}

func (s *MIISocket) SetLogger(log *slog.Logger) {}

func (s *MIISocket) Name() string { return "" }

func (s *MIISocket) ReadReg(id phy.PHYID, reg uint16) (uint16, error) {
	return 0, errors.ErrUnsupported
}

func (s *MIISocket) WriteReg(id phy.PHYID, reg, value uint16) error {
	return errors.ErrUnsupported
}

func (s *MIISocket) Close() error {
	return errors.ErrUnsupported
}
