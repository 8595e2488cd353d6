package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pachcadev/pachca-client/pkg/pachca"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", formatBytes(0))
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(1572864))
	assert.Equal(t, "2.0 GiB", formatBytes(2147483648))
}

func TestChatKind(t *testing.T) {
	assert.Equal(t, "chat", chatKind(pachca.Chat{}))
	assert.Equal(t, "channel", chatKind(pachca.Chat{Channel: true}))
	assert.Equal(t, "personal", chatKind(pachca.Chat{Personal: true, Channel: true}))
}
