package dto

import "time"

// ReportFilter narrows the support-ticket report. Zero values mean "no
// constraint".
type ReportFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Statuses   []string
	Priorities []string
	Categories []string
}

// EquipmentReportFilter narrows the equipment report.
type EquipmentReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Statuses []string
	Types    []string
}

type ReportItemDTO struct {
	TicketID      string     `json:"ticket_id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	CreatorName   string     `json:"creator_name"`
	AssigneeName  string     `json:"assignee_name"`
	EquipmentName string     `json:"equipment_name"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

type EquipmentReportItemDTO struct {
	EquipmentID  string    `json:"equipment_id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	UserName     string    `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
}
