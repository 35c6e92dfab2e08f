package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapEventType(t *testing.T) {
	tests := map[string]model.MilestoneType{
		"晚训":     model.MilestoneTraining,
		"大训练":    model.MilestoneTraining,
		"队列考核":   model.MilestoneExam,
		"升旗考核":   model.MilestoneExam,
		"入队仪式":   model.MilestoneEvent,
		"表演活动":   model.MilestoneEvent,
		"颁奖":     model.MilestoneAward,
		" 颁奖 ":   model.MilestoneAward,
		"期末联欢":   model.MilestoneTraining,
		"":       model.MilestoneTraining,
		"award":  model.MilestoneTraining,
		"队列考核 2": model.MilestoneTraining,
	}
	for name, want := range tests {
		assert.Equal(t, want, MapEventType(name), name)
	}
}

const importCSV = "\uFEFF学号,训练日期,训练时长,出勤状态,事件类型,日期,事件描述,重要性\n" +
	"3024000001,2024-09-20,3,出勤,晚训,2024.09.20,学习基础军姿,首次晚训\n" +
	"3024000001,2024-09-27,4小时,缺勤,常规训练,,,\n" +
	"3024000002,2024-09-20,2.5,出勤,,,,\n"

func TestParseImportCSV(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(importCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "3024000001", rows[0].StudentID)
	assert.Equal(t, "晚训", rows[0].EventType)
	assert.Equal(t, "首次晚训", rows[0].Significance)
	assert.Equal(t, "4小时", rows[1].TrainingHours)
	assert.Equal(t, "", rows[2].EventType)
}

func TestParseImportCSVStripsByteOrderMark(t *testing.T) {
	require.True(t, strings.HasPrefix(importCSV, "\xef\xbb\xbf"), "fixture must start with a UTF-8 BOM")

	rows, err := ParseImportCSV(strings.NewReader(importCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "3024000001", rows[0].StudentID)

	rows, err = ParseImportCSV(strings.NewReader("\uFEFF学号\n3024000009\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "3024000009", rows[0].StudentID)
}

func TestParseImportCSVColumnOrderAndShortRows(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader("训练时长,学号\n3,1\n,2,extra\n5\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0].StudentID)
	assert.Equal(t, "3", rows[0].TrainingHours)
	assert.Equal(t, "2", rows[1].StudentID)
	assert.Equal(t, "", rows[2].StudentID)
}

func TestParseImportCSVErrors(t *testing.T) {
	_, err := ParseImportCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, util.ErrInvalidImport))

	_, err = ParseImportCSV(strings.NewReader("姓名,训练时长\n甲,3\n"))
	assert.True(t, errors.Is(err, util.ErrInvalidImport))

	_, err = ParseImportCSV(strings.NewReader("学号,训练时长\n\"1,3\n"))
	assert.True(t, errors.Is(err, util.ErrInvalidImport))
}

func TestProcessRows(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(importCSV))
	require.NoError(t, err)

	result := ProcessRows(rows)
	assert.Equal(t, 3, result.AcceptedRows)
	assert.Zero(t, result.SkippedRows)
	assert.Empty(t, result.RejectedRows)
	require.Len(t, result.Records, 2)

	first := result.Records[0]
	assert.Equal(t, "3024000001", first.StudentID)
	assert.Equal(t, []float64{3, 4}, first.WeeklyHours)
	assert.Equal(t, 2, first.Statistics.TotalTrainings)
	assert.Equal(t, 1, first.Statistics.Attendances)
	assertFloatNear(t, "totalHours", 7, first.Statistics.TotalHours)
	assertFloatNear(t, "avg", 3.5, first.Statistics.AverageWeeklyHours)
	assertFloatNear(t, "max", 4, first.Statistics.MaxWeeklyHours)
	assertFloatNear(t, "rate", 50, first.Statistics.AttendanceRate)

	// 常规训练不生成里程碑
	require.Len(t, first.Milestones, 1)
	m := first.Milestones[0]
	assert.Equal(t, model.MilestoneTraining, m.Type)
	assert.Equal(t, "晚训", m.Event)
	assert.Equal(t, "2024.09.20", m.Date)
	assert.True(t, m.FirstOccurrence)

	second := result.Records[1]
	assert.Equal(t, "3024000002", second.StudentID)
	assert.Empty(t, second.Milestones)
	assert.NotNil(t, second.Milestones)
	assertFloatNear(t, "rate", 100, second.Statistics.AttendanceRate)

	for _, r := range result.Records {
		assert.NoError(t, r.Validate())
	}
}

func TestProcessRowsRejectsAndSkips(t *testing.T) {
	rows := []model.ImportRow{
		{StudentID: "", TrainingDate: "2024-09-01", TrainingHours: "3"},
		{StudentID: "1", TrainingDate: "2024-09-01", TrainingHours: "abc"},
		{StudentID: "1", TrainingDate: "2024-09-01", TrainingHours: "-2"},
		{StudentID: "1", AttendanceStatus: "出勤"},
		{StudentID: "1", EventType: "常规训练"},
		{StudentID: "1", EventType: "颁奖", EventDate: "2025.01.10", Significance: "优秀队员"},
		// 只有日期没有时长不计入训练
		{StudentID: "2", TrainingDate: "2024-09-01"},
	}

	result := ProcessRows(rows)
	assert.Equal(t, 1, result.AcceptedRows)
	assert.Equal(t, 3, result.SkippedRows)
	require.Len(t, result.RejectedRows, 3)
	assert.Equal(t, 1, result.RejectedRows[0].Row)
	assert.Equal(t, 2, result.RejectedRows[1].Row)
	assert.Equal(t, "1", result.RejectedRows[1].StudentID)
	assert.Equal(t, 3, result.RejectedRows[2].Row)

	require.Len(t, result.Records, 1)
	r := result.Records[0]
	assert.Empty(t, r.WeeklyHours)
	assert.Zero(t, r.Statistics.AttendanceRate)
	require.Len(t, r.Milestones, 1)
	assert.Equal(t, model.MilestoneAward, r.Milestones[0].Type)
	assert.False(t, r.Milestones[0].FirstOccurrence)
}

func TestProcessRowsKeepsFirstAppearanceOrder(t *testing.T) {
	rows := []model.ImportRow{
		{StudentID: "9", TrainingDate: "d", TrainingHours: "1"},
		{StudentID: "1", TrainingDate: "d", TrainingHours: "1"},
		{StudentID: "9", TrainingDate: "d", TrainingHours: "2"},
		{StudentID: "5", TrainingDate: "d", TrainingHours: "1"},
	}
	result := ProcessRows(rows)
	require.Len(t, result.Records, 3)
	assert.Equal(t, "9", result.Records[0].StudentID)
	assert.Equal(t, "1", result.Records[1].StudentID)
	assert.Equal(t, "5", result.Records[2].StudentID)
	assert.Equal(t, []float64{1, 2}, result.Records[0].WeeklyHours)
}

func TestProcessRowsRoundsToOneDecimal(t *testing.T) {
	rows := []model.ImportRow{
		{StudentID: "1", TrainingDate: "d", TrainingHours: "1", AttendanceStatus: "出勤"},
		{StudentID: "1", TrainingDate: "d", TrainingHours: "1", AttendanceStatus: "出勤"},
		{StudentID: "1", TrainingDate: "d", TrainingHours: "2", AttendanceStatus: "请假"},
	}
	r := ProcessRows(rows).Records[0]
	assertFloatNear(t, "total", 4, r.Statistics.TotalHours)
	assertFloatNear(t, "avg", 4.0/3, r.Statistics.AverageWeeklyHours)
	assertFloatNear(t, "rate", 66.7, r.Statistics.AttendanceRate)
}

func TestProcessRowsKeepsAverageBelowHoursThreshold(t *testing.T) {
	rows := []model.ImportRow{
		{StudentID: "1", TrainingDate: "2024-09-01", TrainingHours: "3.95", AttendanceStatus: "出勤"},
	}
	r := ProcessRows(rows).Records[0]
	assertFloatNear(t, "avg", 3.95, r.Statistics.AverageWeeklyHours)

	report := BuildTrainingReport(r)
	assert.Equal(t, []string{RecommendHours}, report.Recommendations)
}

func TestProcessRowsRejectsNonFiniteHours(t *testing.T) {
	rows := []model.ImportRow{
		{StudentID: "1", TrainingDate: "2024-09-01", TrainingHours: "NaN", AttendanceStatus: "出勤"},
		{StudentID: "1", TrainingDate: "2024-09-08", TrainingHours: "Inf", AttendanceStatus: "出勤"},
		{StudentID: "1", TrainingDate: "2024-09-15", TrainingHours: "3", AttendanceStatus: "出勤"},
	}
	result := ProcessRows(rows)
	require.Len(t, result.RejectedRows, 2)
	assert.Equal(t, 1, result.RejectedRows[0].Row)
	assert.Equal(t, 2, result.RejectedRows[1].Row)

	require.Len(t, result.Records, 1)
	assert.Equal(t, []float64{3}, result.Records[0].WeeklyHours)
	assert.NoError(t, result.Records[0].Validate())
}

func TestImportServiceImport(t *testing.T) {
	rows, err := ParseImportCSV(strings.NewReader(importCSV))
	require.NoError(t, err)

	records := newFakeRecords()
	cache := newFakeCache()
	cache.reports["3024000001"] = model.TrainingReport{Summary: "stale"}

	summary, err := NewImportService(records, cache).Import(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.Imported)
	assert.Zero(t, summary.Failed)
	assert.NotNil(t, summary.RejectedRows)
	require.Len(t, summary.Results, 2)
	assert.True(t, summary.Results[0].Success)
	assert.Equal(t, 2, summary.Results[0].Weeks)
	assert.Equal(t, 1, summary.Results[0].Milestones)

	assert.Len(t, records.records, 2)
	assert.ElementsMatch(t, []string{"3024000001", "3024000002"}, cache.invalidated)
	_, ok := cache.Get(context.Background(), "3024000001")
	assert.False(t, ok)
}

func TestImportServiceWriterFailure(t *testing.T) {
	records := newFakeRecords()
	records.upsertErr = errBackend
	cache := newFakeCache()

	summary, err := NewImportService(records, cache).Import(context.Background(), []model.ImportRow{
		{StudentID: "1", TrainingDate: "d", TrainingHours: "3"},
	})
	require.NoError(t, err)
	assert.Zero(t, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Results[0].Success)
	assert.NotEmpty(t, summary.Results[0].Error)
	assert.Empty(t, cache.invalidated)
}

func TestImportServiceEmptyRows(t *testing.T) {
	_, err := NewImportService(newFakeRecords(), newFakeCache()).Import(context.Background(), nil)
	assert.True(t, errors.Is(err, util.ErrInvalidImport))
}

func TestImportServiceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImportService(newFakeRecords(), newFakeCache()).Import(ctx, []model.ImportRow{
		{StudentID: "1", TrainingDate: "d", TrainingHours: "3"},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
