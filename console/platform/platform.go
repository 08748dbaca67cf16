package platform

import "github.com/hnimtadd/vgacon/logger"

const (
	// KeyboardControllerPort is the 8042 command port.
	KeyboardControllerPort uint16 = 0x64
	// PulseResetLine is the 8042 command that pulses the CPU reset line.
	PulseResetLine byte = 0xFE
)

// Port writes one byte to an I/O port. Freestanding builds implement it
// with an outb instruction.
type Port interface {
	Outb(port uint16, value byte)
}

// Rebooter asks the platform to restart the machine. The request is fire
// and forget: on real hardware it never returns, elsewhere nothing is
// observed.
type Rebooter interface {
	RequestReboot()
}

var _ Rebooter = &Controller{}

// Controller reboots through the keyboard controller.
type Controller struct {
	Port   Port
	Logger logger.Logger
}

func (c *Controller) RequestReboot() {
	logger.OrDefault(c.Logger).Info("requesting reboot",
		"port", KeyboardControllerPort, "value", PulseResetLine)
	c.Port.Outb(KeyboardControllerPort, PulseResetLine)
}

// PortWrite is one recorded Outb.
type PortWrite struct {
	Port  uint16
	Value byte
}

var _ Port = &Recorder{}

// Recorder is a Port for hosted runs and tests. It keeps every write
// instead of touching hardware.
type Recorder struct {
	Writes []PortWrite
	Logger logger.Logger
}

func (r *Recorder) Outb(port uint16, value byte) {
	logger.OrDefault(r.Logger).Debug("port write", "port", port, "value", value)
	r.Writes = append(r.Writes, PortWrite{Port: port, Value: value})
}
