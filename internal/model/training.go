package model

import (
	"fmt"
	"math"
	"time"
)

type MilestoneType string

const (
	MilestoneTraining MilestoneType = "training"
	MilestoneExam     MilestoneType = "exam"
	MilestoneEvent    MilestoneType = "event"
	MilestoneAward    MilestoneType = "award"
)

// MilestoneTypes 已知的里程碑类型，顺序固定
var MilestoneTypes = []MilestoneType{MilestoneTraining, MilestoneExam, MilestoneEvent, MilestoneAward}

func (t MilestoneType) Valid() bool {
	switch t {
	case MilestoneTraining, MilestoneExam, MilestoneEvent, MilestoneAward:
		return true
	}
	return false
}

// MilestoneDateLayout 里程碑日期格式，如 2024.09.15
const MilestoneDateLayout = "2006.01.02"

// Milestone 训练历程中的关键节点
type Milestone struct {
	Date            string        `json:"date" yaml:"date"`
	Event           string        `json:"event" yaml:"event"`
	Type            MilestoneType `json:"type" yaml:"type"`
	Description     string        `json:"description" yaml:"description"`
	Score           string        `json:"score,omitempty" yaml:"score,omitempty"`
	Significance    string        `json:"significance,omitempty" yaml:"significance,omitempty"`
	FirstOccurrence bool          `json:"firstOccurrence,omitempty" yaml:"firstOccurrence,omitempty"`
}

// BaseStatistics 训练记录自带的统计计数
type BaseStatistics struct {
	TotalHours         float64 `json:"totalHours" yaml:"totalHours"`
	AverageWeeklyHours float64 `json:"averageWeeklyHours" yaml:"averageWeeklyHours"`
	MaxWeeklyHours     float64 `json:"maxWeeklyHours" yaml:"maxWeeklyHours"`
	TotalTrainings     int     `json:"totalTrainings" yaml:"totalTrainings"`
	Attendances        int     `json:"attendances" yaml:"attendances"`
	AttendanceRate     float64 `json:"attendanceRate" yaml:"attendanceRate"`
}

// TrainingRecord 队员的原始训练记录
type TrainingRecord struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"-" yaml:"-"`
	StudentID   string         `gorm:"uniqueIndex;size:20;not null" json:"studentId" yaml:"studentId"`
	WeeklyHours []float64      `gorm:"serializer:json;type:json" json:"weeklyHours" yaml:"weeklyHours"`
	Milestones  []Milestone    `gorm:"serializer:json;type:json" json:"milestones" yaml:"milestones"`
	Statistics  BaseStatistics `gorm:"serializer:json;type:json" json:"statistics" yaml:"statistics"`
	PhotoStats  map[string]int `gorm:"serializer:json;type:json" json:"photoStats,omitempty" yaml:"photoStats,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt" yaml:"-"`
}

func (TrainingRecord) TableName() string {
	return "training_records"
}

// Validate 写入前校验，读取路径不调用
func (r *TrainingRecord) Validate() error {
	if r.StudentID == "" {
		return fmt.Errorf("studentId is required")
	}
	for i, h := range r.WeeklyHours {
		if !isFinite(h) {
			return fmt.Errorf("weeklyHours[%d] is not a finite number", i)
		}
		if h < 0 {
			return fmt.Errorf("weeklyHours[%d] is negative: %v", i, h)
		}
	}
	s := r.Statistics
	for _, v := range []float64{s.TotalHours, s.AverageWeeklyHours, s.MaxWeeklyHours, s.AttendanceRate} {
		if !isFinite(v) {
			return fmt.Errorf("statistics must be finite numbers")
		}
	}
	if s.TotalHours < 0 || s.AverageWeeklyHours < 0 || s.MaxWeeklyHours < 0 {
		return fmt.Errorf("statistics hours must not be negative")
	}
	if s.TotalTrainings < 0 || s.Attendances < 0 {
		return fmt.Errorf("statistics counters must not be negative")
	}
	if s.Attendances > s.TotalTrainings {
		return fmt.Errorf("attendances (%d) exceed totalTrainings (%d)", s.Attendances, s.TotalTrainings)
	}
	if s.AttendanceRate < 0 || s.AttendanceRate > 100 {
		return fmt.Errorf("attendanceRate must be within [0, 100]: %v", s.AttendanceRate)
	}
	for i, m := range r.Milestones {
		if !m.Type.Valid() {
			return fmt.Errorf("milestones[%d] has unknown type %q", i, m.Type)
		}
	}
	for category, n := range r.PhotoStats {
		if n < 0 {
			return fmt.Errorf("photoStats[%s] is negative: %d", category, n)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
