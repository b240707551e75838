package history

import (
	"fmt"
	"time"
)

// Entry is one monthly credit score snapshot. At most one row per user per
// calendar month; writing the same month again overwrites it.
type Entry struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:64;uniqueIndex:ux_score_history_user_month,priority:1" json:"-"`
	Year         int       `gorm:"uniqueIndex:ux_score_history_user_month,priority:2" json:"year"`
	Month        int       `gorm:"uniqueIndex:ux_score_history_user_month,priority:3" json:"month"`
	Score        int       `json:"score"`
	Category     string    `gorm:"size:16" json:"category"`
	CalculatedAt time.Time `json:"calculated_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Entry) TableName() string { return "credit_score_history" }

func (e *Entry) MonthYear() string { return fmt.Sprintf("%04d-%02d", e.Year, e.Month) }
