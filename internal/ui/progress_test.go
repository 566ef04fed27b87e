package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(2, &out, false)

	bar.Running("parser_test")
	assert.Contains(t, out.String(), "parser_test")

	bar.Record(true)
	bar.Running("net_test")
	bar.Record(false)
	bar.Finish()

	text := out.String()
	assert.Contains(t, text, "net_test")
	assert.Contains(t, text, "passed: 1 | failed: 1")
	assert.NotContains(t, text, "\x1b[3")
}
