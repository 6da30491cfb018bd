package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()

	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func TestInfoWithKeyValues(t *testing.T) {
	var buf bytes.Buffer
	Init()
	InfoLogger = log.New(&buf, "INFO: ", 0)

	Info("slot booked", "venue", "c1", "date", "2025-06-01")

	out := buf.String()
	assert.Contains(t, out, "slot booked")
	assert.Contains(t, out, "venue=c1")
	assert.Contains(t, out, "date=2025-06-01")
}

func TestInfoOddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	Init()
	InfoLogger = log.New(&buf, "", 0)

	Info("msg", "dangling")

	assert.Contains(t, buf.String(), "dangling=?")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Init()
	ErrorLogger = log.New(&buf, "ERROR: ", 0)

	Errorf("failed after %d tries", 3)

	assert.Contains(t, buf.String(), "failed after 3 tries")
}
