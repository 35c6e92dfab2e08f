package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrainingServiceForTest(records *fakeRecords, cache *fakeCache, members ...model.Member) *TrainingService {
	return NewTrainingService(records, records, &fakeMembers{members: members}, cache)
}

func TestGetTrainingDataSortsMilestones(t *testing.T) {
	record := sampleRecord()
	record.Milestones[0], record.Milestones[7] = record.Milestones[7], record.Milestones[0]
	svc := newTrainingServiceForTest(newFakeRecords(record), newFakeCache())

	data, err := svc.GetTrainingData(context.Background(), "3024000001")
	require.NoError(t, err)

	assert.Equal(t, "2024.09.15", data.Milestones[0].Date)
	assert.Equal(t, "2025.01.15", data.Milestones[7].Date)
	assert.Equal(t, model.TrendStable, data.Statistics.Trend)
	assertFloatNear(t, "rate", 95.6, data.Statistics.AttendanceRate)
	assert.Equal(t, 4, data.PhotoStats["award"])
}

func TestGetTrainingDataNotFound(t *testing.T) {
	svc := newTrainingServiceForTest(newFakeRecords(), newFakeCache())
	_, err := svc.GetTrainingData(context.Background(), "404")
	assert.True(t, errors.Is(err, util.ErrTrainingRecordNotFound))
	assert.True(t, IsNotFound(err))
}

func TestGetTrainingReportUsesCache(t *testing.T) {
	records := newFakeRecords(sampleRecord())
	cache := newFakeCache()
	svc := newTrainingServiceForTest(records, cache)
	ctx := context.Background()

	report, err := svc.GetTrainingReport(ctx, "3024000001")
	require.NoError(t, err)
	assert.NotEmpty(t, report.Summary)
	assert.Equal(t, []string{RecommendKeepGoing}, report.Recommendations)
	assert.Equal(t, 1, records.gets)

	cached, err := svc.GetTrainingReport(ctx, "3024000001")
	require.NoError(t, err)
	assert.Equal(t, report.Summary, cached.Summary)
	assert.Equal(t, 1, records.gets, "second call served from cache")
}

func TestGetTrainingReportCacheFailureIsNotFatal(t *testing.T) {
	cache := newFakeCache()
	cache.setErr = errBackend
	svc := newTrainingServiceForTest(newFakeRecords(sampleRecord()), cache)

	report, err := svc.GetTrainingReport(context.Background(), "3024000001")
	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestUpdateTrainingRecord(t *testing.T) {
	records := newFakeRecords(sampleRecord())
	cache := newFakeCache()
	svc := newTrainingServiceForTest(records, cache)
	ctx := context.Background()

	_, err := svc.GetTrainingReport(ctx, "3024000001")
	require.NoError(t, err)

	updated := sampleRecord()
	updated.WeeklyHours = []float64{6, 6, 2, 2}
	require.NoError(t, svc.UpdateTrainingRecord(ctx, &updated))
	assert.Equal(t, []string{"3024000001"}, cache.invalidated)

	report, err := svc.GetTrainingReport(ctx, "3024000001")
	require.NoError(t, err)
	assert.Equal(t, model.TrendDeclining, report.Statistics.Trend)
}

func TestUpdateTrainingRecordRejectsInvalid(t *testing.T) {
	records := newFakeRecords()
	svc := newTrainingServiceForTest(records, newFakeCache())

	bad := model.TrainingRecord{StudentID: "1", WeeklyHours: []float64{-1}}
	err := svc.UpdateTrainingRecord(context.Background(), &bad)
	assert.True(t, errors.Is(err, util.ErrInvalidTrainingRecord))
	assert.Empty(t, records.records)
}

func TestUpdateTrainingRecordWriterError(t *testing.T) {
	records := newFakeRecords()
	records.upsertErr = errBackend
	cache := newFakeCache()
	svc := newTrainingServiceForTest(records, cache)

	r := sampleRecord()
	err := svc.UpdateTrainingRecord(context.Background(), &r)
	assert.ErrorIs(t, err, errBackend)
	assert.Empty(t, cache.invalidated)
}

func TestGetCohortOverview(t *testing.T) {
	declining := model.TrainingRecord{
		StudentID:   "3024000002",
		WeeklyHours: []float64{5, 5, 1, 1},
		Milestones: []model.Milestone{
			{Type: model.MilestoneAward},
			{Type: "ceremony"},
		},
		Statistics: model.BaseStatistics{TotalTrainings: 10, Attendances: 7},
	}
	records := newFakeRecords(sampleRecord(), declining)
	svc := newTrainingServiceForTest(records, newFakeCache(),
		model.Member{StudentID: "3024000001"},
		model.Member{StudentID: "3024000002"},
		model.Member{StudentID: "3024000003"},
	)
	svc.Concurrency = 1

	overview, err := svc.GetCohortOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.MemberCount)
	assert.Equal(t, 2, overview.RecordCount)
	assert.Equal(t, 0, overview.TrendDistribution[model.TrendImproving])
	assert.Equal(t, 1, overview.TrendDistribution[model.TrendDeclining])
	assert.Equal(t, 1, overview.TrendDistribution[model.TrendStable])
	// (95.6 + 70) / 2
	assertFloatNear(t, "avg attendance", 82.8, overview.AverageAttendanceRate)
	// 98 + 周记录求和 12
	assertFloatNear(t, "total hours", 110, overview.TotalHours)
	assert.Equal(t, 10, overview.Milestones.Total)
	assert.Equal(t, 4, overview.Milestones.Exam)
	assert.Equal(t, 1, overview.Milestones.Award)
	assert.Equal(t, 1, overview.Milestones.Unrecognized)
}

func TestGetCohortOverviewEmpty(t *testing.T) {
	svc := newTrainingServiceForTest(newFakeRecords(), newFakeCache())
	overview, err := svc.GetCohortOverview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.RecordCount)
	assert.Zero(t, overview.AverageAttendanceRate)
	assert.Len(t, overview.TrendDistribution, 3)
}

func TestGetCohortOverviewMemberError(t *testing.T) {
	svc := NewTrainingService(newFakeRecords(), newFakeRecords(), &fakeMembers{err: errBackend}, newFakeCache())
	_, err := svc.GetCohortOverview(context.Background())
	assert.ErrorIs(t, err, errBackend)
}
