package platform

import (
	"testing"

	"github.com/hnimtadd/vgacon/logger"
	"github.com/stretchr/testify/assert"
)

func TestController_RequestReboot(t *testing.T) {
	port := &Recorder{Logger: logger.Discard}
	ctrl := &Controller{Port: port, Logger: logger.Discard}

	ctrl.RequestReboot()

	assert.Equal(t, []PortWrite{{Port: 0x64, Value: 0xFE}}, port.Writes)
}
