package storage

import "time"

// RootModel is the GORM model for roots table
type RootModel struct {
	CreatedAt   time.Time
	ErrorDir    string `gorm:"not null"`
	ID          uint   `gorm:"primaryKey"`
	IncomingDir string `gorm:"not null"`
	Name        string `gorm:"not null;uniqueIndex:idx_root_name"`
	OutgoingDir string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RootModel) TableName() string { return "roots" }

// TestCaseModel is the GORM model for test_cases table
type TestCaseModel struct {
	Content    []byte
	CreatedAt  time.Time
	ID         uint   `gorm:"primaryKey"`
	Kind       string `gorm:"not null;default:'exact';check:kind IN ('exact','glob','regex')"`
	Name       string `gorm:"not null"`
	OutputName string `gorm:"not null;default:''"`
	Pattern    string `gorm:"not null"`
	Position   int    `gorm:"not null;default:0;index:idx_root_position,priority:2"`
	RootID     uint   `gorm:"not null;index:idx_root_position,priority:1"`
	Target     string `gorm:"not null;default:'error';check:target IN ('outgoing','error')"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (TestCaseModel) TableName() string { return "test_cases" }
