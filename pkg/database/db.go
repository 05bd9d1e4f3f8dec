package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SlotRecord represents the slots table
type SlotRecord struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Position int    `gorm:"not null;index" json:"position"`
	Sector   string `gorm:"not null" json:"sector"`
	Shift    string `gorm:"not null" json:"shift"`
	Role     string `gorm:"not null" json:"role"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

func (SlotRecord) TableName() string { return "slots" }

// RequestRecord represents the shift_requests table
type RequestRecord struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Position int     `gorm:"not null;index" json:"position"`
	Employee string  `gorm:"not null" json:"employee"`
	Sector   string  `gorm:"not null" json:"sector"`
	Shift    string  `gorm:"not null" json:"shift"`
	Role     string  `gorm:"not null" json:"role"`
	Hours    float64 `json:"hours"`
	Status   string  `gorm:"not null;default:pending" json:"status"`
}

func (RequestRecord) TableName() string { return "shift_requests" }

// BoardState represents the single-row board_states table
type BoardState struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	NextSlotID    int        `gorm:"not null;default:1" json:"next_slot_id"`
	Status        string     `gorm:"not null;default:draft" json:"status"`
	PublicationID string     `json:"publication_id"`
	PublishedAt   *time.Time `json:"published_at"`
	PublishedBy   string     `json:"published_by"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Options selects the database backend
type Options struct {
	DatabaseURL string
	DataPath    string
	Debug       bool
}

// InitDB opens postgres when a DSN is given, sqlite otherwise, and migrates the schema
func InitDB(opts Options) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if opts.Debug {
		cfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	if opts.DatabaseURL != "" {
		cfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  opts.DatabaseURL,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		dbPath := opts.DataPath
		if dbPath == "" {
			dbPath = "shift_board.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), cfg)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&SlotRecord{}, &RequestRecord{}, &BoardState{}, &MasterUser{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
