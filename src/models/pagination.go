package models

import "math"

// PaginationParams ใช้เก็บค่าการแบ่งหน้า
type PaginationParams struct {
	Page  int `json:"page" query:"page" example:"1"`    // หมายเลขหน้าที่ต้องการ
	Limit int `json:"limit" query:"limit" example:"10"` // จำนวนรายการต่อหน้า
}

// NewPaginationParams normalizes page/limit to sane values.
func NewPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return PaginationParams{Page: page, Limit: limit}
}

// Skip คำนวณจำนวนรายการที่ต้องข้าม
func (p PaginationParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Pagination โครงสร้างการตอบกลับแบบแบ่งหน้า — field ตรงกับ wire format ของ frontend
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalSessions int64 `json:"totalSessions"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

// NewPagination สร้าง Pagination จากจำนวนรายการทั้งหมด
func NewPagination(total int64, p PaginationParams) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))

	return Pagination{
		CurrentPage:   p.Page,
		TotalPages:    totalPages,
		TotalSessions: total,
		HasNextPage:   p.Page < totalPages,
		HasPrevPage:   p.Page > 1,
	}
}
