package qrcode

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayload(t *testing.T) {
	p := BuildPayload("sess-1", "http://localhost:5173")

	assert.Equal(t, "sess-1", p.SessionID)
	assert.Equal(t, "attendance", p.Type)
	assert.Equal(t, "http://localhost:5173/attendance/sess-1", p.URL)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "qr-sess-1.png", FileName("sess-1"))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	p := BuildPayload("sess-1", "http://localhost:5173")

	dataURI, fileURL, err := Generate(p, dir)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/qr-sess-1.png", fileURL)
	assert.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

	// data URI ต้อง decode กลับเป็น PNG เดียวกับไฟล์บน disk
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
	assert.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(dir, "qr-sess-1.png"))
	assert.NoError(t, err)
	assert.Equal(t, onDisk, decoded)
}

func TestRemoveFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Generate(BuildPayload("sess-1", "http://localhost:5173"), dir)
	assert.NoError(t, err)

	assert.NoError(t, RemoveFile(dir, "sess-1"))
	_, err = os.Stat(filepath.Join(dir, "qr-sess-1.png"))
	assert.True(t, os.IsNotExist(err))

	// ลบซ้ำต้องไม่ error
	assert.NoError(t, RemoveFile(dir, "sess-1"))
}
