package model

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// DerivedStats 聚合计算结果，内嵌的基础统计会被补全
type DerivedStats struct {
	BaseStatistics
	Trend                  Trend `json:"trend"`
	TotalMilestones        int   `json:"totalMilestones"`
	TrainingMilestones     int   `json:"trainingMilestones"`
	ExamMilestones         int   `json:"examMilestones"`
	EventMilestones        int   `json:"eventMilestones"`
	AwardMilestones        int   `json:"awardMilestones"`
	UnrecognizedMilestones int   `json:"unrecognizedMilestones"`
}

// MilestoneCounts 按类型统计的里程碑数量
type MilestoneCounts struct {
	Total        int `json:"total"`
	Training     int `json:"training"`
	Exam         int `json:"exam"`
	Event        int `json:"event"`
	Award        int `json:"award"`
	Unrecognized int `json:"unrecognized"`
}

// Highlight 训练亮点
type Highlight struct {
	Date        string `json:"date"`
	Event       string `json:"event"`
	Description string `json:"description"`
}

// TrainingData 训练记录与聚合统计
type TrainingData struct {
	StudentID   string         `json:"studentId"`
	WeeklyHours []float64      `json:"weeklyHours"`
	Milestones  []Milestone    `json:"milestones"`
	PhotoStats  map[string]int `json:"photoStats,omitempty"`
	Statistics  DerivedStats   `json:"statistics"`
}

// TrainingReport 训练报告
type TrainingReport struct {
	Summary         string       `json:"summary"`
	Highlights      []Highlight  `json:"highlights"`
	Recommendations []string     `json:"recommendations"`
	Statistics      DerivedStats `json:"statistics"`
}

// CohortOverview 全届训练概览
type CohortOverview struct {
	MemberCount           int             `json:"memberCount"`
	RecordCount           int             `json:"recordCount"`
	TrendDistribution     map[Trend]int   `json:"trendDistribution"`
	AverageAttendanceRate float64         `json:"averageAttendanceRate"`
	TotalHours            float64         `json:"totalHours"`
	Milestones            MilestoneCounts `json:"milestones"`
}
