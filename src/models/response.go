package models

// Response โครงสร้างมาตรฐานของทุก endpoint — success บอกผลจริง ไม่ใช่แค่ HTTP status
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
