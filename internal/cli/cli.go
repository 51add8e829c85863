// Package cli implements the mii-c45 and mii-dump commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/soypat/mii/internal"
	"github.com/soypat/mii/phy"
)

// Exit codes shared by the commands.
const (
	ExitOK          = 0 // Done. Register access failures do not change the exit code.
	ExitUsage       = 1 // Missing arguments.
	ExitEnumerate   = 2 // Could not list host interfaces.
	ExitNoInterface = 3 // Interface not found.
	ExitSocket      = 4 // Could not open the register socket.
)

// Bus is an open register bus of a network interface.
type Bus interface {
	phy.RegisterBus
	io.Closer
}

// Env is the environment a command runs in.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Interfaces returns the names of the network interfaces on the host.
	Interfaces func() ([]string, error)
	// Open opens the register bus of the named interface. log may be nil.
	Open func(ifname string, log *slog.Logger) (Bus, error)
}

// HostEnv returns the Env of the running process, issuing MII ioctls on the host.
func HostEnv() Env {
	return Env{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Interfaces: internal.InterfaceNames,
		Open:       openSocket,
	}
}

func openSocket(ifname string, log *slog.Logger) (Bus, error) {
	sock, err := internal.OpenMII(ifname)
	if err != nil {
		return nil, err
	}
	sock.SetLogger(log)
	return sock, nil
}

func (env Env) flagSet(args []string, defaultName string) (prog string, fs *flag.FlagSet) {
	prog = defaultName
	if len(args) > 0 {
		prog = args[0]
	}
	fs = flag.NewFlagSet(filepath.Base(prog), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return prog, fs
}

// usage prints the usage line and the option defaults.
func (env Env) usage(prog, positional string, fs *flag.FlagSet, err error) int {
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(env.Stderr, err)
	}
	fmt.Fprintf(env.Stdout, "usage: %s %s\n", prog, positional)
	fs.SetOutput(env.Stdout)
	fs.PrintDefaults()
	return ExitUsage
}

func (env Env) logger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: internal.LevelTrace}))
}

// connect checks the interface exists on the host and opens its register bus.
// On failure the diagnostic is printed and the exit code returned.
func (env Env) connect(ifname string, log *slog.Logger) (Bus, int) {
	names, err := env.Interfaces()
	if err != nil {
		fmt.Fprintf(env.Stderr, "Failed to get interface address: %v\n", err)
		return nil, ExitEnumerate
	}
	if !internal.HasInterface(names, ifname) {
		fmt.Fprintf(env.Stdout, "Wrong interface name (%s)\n", ifname)
		return nil, ExitNoInterface
	}
	bus, err := env.Open(ifname, log)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Failed to open socket: %v\n", err)
		return nil, ExitSocket
	}
	internal.LogAttrs(log, slog.LevelDebug, "mii:open", slog.String("ifname", ifname))
	return bus, ExitOK
}

// reportAccess prints the diagnostic of a failed register access.
func (env Env) reportAccess(err error) {
	op := "get"
	var aerr *phy.AccessError
	if errors.As(err, &aerr) {
		if aerr.Write {
			op = "set"
		}
		err = aerr.Err
	}
	fmt.Fprintf(env.Stderr, "Failed to %s MII registers: %v\n", op, err)
}
