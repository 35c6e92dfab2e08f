package service

import (
	"flagguard_backend/internal/model"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FirstOccurrenceMarker 旧数据在 significance 中用该词标记“第一次”
const FirstOccurrenceMarker = "首次"

const (
	improvingRatio = 1.2
	decliningRatio = 0.8

	lowAttendanceRate = 90
	lowWeeklyHours    = 4
)

const (
	RecommendAttendance = "建议提高出勤率，保持训练连续性"
	RecommendHours      = "建议适当增加每周训练时长，保持训练强度"
	RecommendDeclining  = "近期训练时长有所下降，建议调整训练计划"
	RecommendKeepGoing  = "继续保持当前的训练状态，持续进步"
)

// ComputeStatistics 由原始训练记录计算衍生统计，不修改输入
func ComputeStatistics(record model.TrainingRecord) model.DerivedStats {
	base := record.Statistics

	base.AttendanceRate = AttendanceRate(base.Attendances, base.TotalTrainings)
	if base.AverageWeeklyHours == 0 {
		base.AverageWeeklyHours = mean(record.WeeklyHours)
	}
	if base.MaxWeeklyHours == 0 {
		base.MaxWeeklyHours = maxOf(record.WeeklyHours)
	}

	counts := CountMilestones(record.Milestones)

	return model.DerivedStats{
		BaseStatistics:         base,
		Trend:                  AnalyzeTrend(record.WeeklyHours),
		TotalMilestones:        counts.Total,
		TrainingMilestones:     counts.Training,
		ExamMilestones:         counts.Exam,
		EventMilestones:        counts.Event,
		AwardMilestones:        counts.Award,
		UnrecognizedMilestones: counts.Unrecognized,
	}
}

// AnalyzeTrend 比较前后两半周训练时长的均值
func AnalyzeTrend(weeklyHours []float64) model.Trend {
	if len(weeklyHours) < 2 {
		return model.TrendStable
	}

	mid := len(weeklyHours) / 2
	firstHalf := mean(weeklyHours[:mid])
	secondHalf := mean(weeklyHours[mid:])

	switch {
	case secondHalf > firstHalf*improvingRatio:
		return model.TrendImproving
	case secondHalf < firstHalf*decliningRatio:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}

// CountMilestones 按类型计数，未知类型只计入 Unrecognized
func CountMilestones(milestones []model.Milestone) model.MilestoneCounts {
	counts := model.MilestoneCounts{Total: len(milestones)}
	for _, m := range milestones {
		switch m.Type {
		case model.MilestoneTraining:
			counts.Training++
		case model.MilestoneExam:
			counts.Exam++
		case model.MilestoneEvent:
			counts.Event++
		case model.MilestoneAward:
			counts.Award++
		default:
			counts.Unrecognized++
		}
	}
	return counts
}

// AttendanceRate 出勤率百分比，保留一位小数
func AttendanceRate(attendances, totalTrainings int) float64 {
	if totalTrainings <= 0 {
		return 0
	}
	return roundTo1(float64(attendances) / float64(totalTrainings) * 100)
}

// IsHighlight 显式标记或 significance 含“首次”
func IsHighlight(m model.Milestone) bool {
	return m.FirstOccurrence || strings.Contains(m.Significance, FirstOccurrenceMarker)
}

// ExtractHighlights 提取训练亮点，保持原有顺序
func ExtractHighlights(milestones []model.Milestone) []model.Highlight {
	highlights := make([]model.Highlight, 0)
	for _, m := range milestones {
		if !IsHighlight(m) {
			continue
		}
		highlights = append(highlights, model.Highlight{
			Date:        m.Date,
			Event:       m.Event,
			Description: m.Description,
		})
	}
	return highlights
}

// GenerateRecommendations 按固定顺序生成训练建议，至少返回一条
func GenerateRecommendations(stats model.DerivedStats) []string {
	var recommendations []string

	if stats.AttendanceRate < lowAttendanceRate {
		recommendations = append(recommendations, RecommendAttendance)
	}
	if stats.AverageWeeklyHours < lowWeeklyHours {
		recommendations = append(recommendations, RecommendHours)
	}
	if stats.Trend == model.TrendDeclining {
		recommendations = append(recommendations, RecommendDeclining)
	}

	if len(recommendations) == 0 {
		return []string{RecommendKeepGoing}
	}
	return recommendations
}

// GenerateSummary 生成一段训练总结
func GenerateSummary(stats model.DerivedStats, milestones []model.Milestone) string {
	return fmt.Sprintf(
		"在过去的一学期中，您共参加了%d次训练，累计训练时长%s小时，平均每周训练%.1f小时。"+
			"您的出勤率达到%s%%，展现了极高的训练热情和责任感。"+
			"经历了%d个重要训练节点，包括%d次考核和%d次重要活动。",
		stats.TotalTrainings,
		formatNumber(stats.TotalHours),
		stats.AverageWeeklyHours,
		formatNumber(stats.AttendanceRate),
		len(milestones),
		stats.ExamMilestones,
		stats.EventMilestones,
	)
}

// BuildTrainingReport 汇总总结、亮点与建议
func BuildTrainingReport(record model.TrainingRecord) model.TrainingReport {
	stats := ComputeStatistics(record)
	return model.TrainingReport{
		Summary:         GenerateSummary(stats, record.Milestones),
		Highlights:      ExtractHighlights(record.Milestones),
		Recommendations: GenerateRecommendations(stats),
		Statistics:      stats,
	}
}

var milestoneDateLayouts = []string{model.MilestoneDateLayout, "2006-01-02", "2006/01/02"}

func parseMilestoneDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range milestoneDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortMilestonesByDate 返回按日期排序的副本，无法解析的日期排在最后
func SortMilestonesByDate(milestones []model.Milestone) []model.Milestone {
	type keyed struct {
		m  model.Milestone
		t  time.Time
		ok bool
	}

	items := make([]keyed, len(milestones))
	for i, m := range milestones {
		t, ok := parseMilestoneDate(m.Date)
		items[i] = keyed{m: m, t: t, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		if a.ok {
			return a.t.Before(b.t)
		}
		return a.m.Date < b.m.Date
	})

	sorted := make([]model.Milestone, len(items))
	for i, it := range items {
		sorted[i] = it.m
	}
	return sorted
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
