package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// Payload ข้อมูลที่ฝังใน QR code — student scan แล้วเปิด url นี้
type Payload struct {
	SessionID string `json:"sessionId"`
	Type      string `json:"type"`
	URL       string `json:"url"`
}

// BuildPayload สร้าง payload สำหรับ session เช็คชื่อ
func BuildPayload(sessionID, frontendURL string) Payload {
	return Payload{
		SessionID: sessionID,
		Type:      "attendance",
		URL:       fmt.Sprintf("%s/attendance/%s", frontendURL, sessionID),
	}
}

// FileName ชื่อไฟล์ PNG ของ session — ใช้ตรงกันทั้งตอนสร้างและตอนลบ
func FileName(sessionID string) string {
	return fmt.Sprintf("qr-%s.png", sessionID)
}

// Generate เรนเดอร์ QR code เป็นไฟล์ PNG ใน dir และคืน base64 data URI กับ URL สำหรับเข้าถึง
func Generate(payload Payload, dir string) (dataURI string, fileURL string, err error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	name := FileName(payload.SessionID)
	if err := os.WriteFile(filepath.Join(dir, name), png, 0o644); err != nil {
		return "", "", err
	}

	dataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	fileURL = "/uploads/" + name
	return dataURI, fileURL, nil
}

// RemoveFile ลบไฟล์ QR ของ session — ไฟล์ไม่อยู่แล้วไม่ถือเป็น error
func RemoveFile(dir, sessionID string) error {
	err := os.Remove(filepath.Join(dir, FileName(sessionID)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
