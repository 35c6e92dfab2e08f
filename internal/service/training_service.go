package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"
	"flagguard_backend/pkg/monitoring"
	"flagguard_backend/pkg/tracing"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 全届概览并发计算的上限
const defaultOverviewConcurrency = 8

type TrainingService struct {
	Records     TrainingRecordSource
	Writer      TrainingRecordWriter
	Members     MemberSource
	Cache       ReportCache
	Concurrency int
}

func NewTrainingService(
	records TrainingRecordSource,
	writer TrainingRecordWriter,
	members MemberSource,
	cache ReportCache,
) *TrainingService {
	return &TrainingService{
		Records:     records,
		Writer:      writer,
		Members:     members,
		Cache:       cache,
		Concurrency: defaultOverviewConcurrency,
	}
}

// GetTrainingData 训练记录及衍生统计
func (s *TrainingService) GetTrainingData(ctx context.Context, studentID string) (_ *model.TrainingData, err error) {
	ctx, span := tracing.StartSpan(ctx, "TrainingService.GetTrainingData", attribute.String("student_id", studentID))
	defer func() { tracing.EndSpan(span, err) }()

	record, err := s.Records.GetTrainingRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &model.TrainingData{
		StudentID:   record.StudentID,
		WeeklyHours: record.WeeklyHours,
		Milestones:  SortMilestonesByDate(record.Milestones),
		PhotoStats:  record.PhotoStats,
		Statistics:  ComputeStatistics(*record),
	}, nil
}

// GetTrainingReport 训练报告，优先读缓存
func (s *TrainingService) GetTrainingReport(ctx context.Context, studentID string) (_ *model.TrainingReport, err error) {
	ctx, span := tracing.StartSpan(ctx, "TrainingService.GetTrainingReport", attribute.String("student_id", studentID))
	defer func() { tracing.EndSpan(span, err) }()

	if cached, ok := s.Cache.Get(ctx, studentID); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	record, err := s.Records.GetTrainingRecord(ctx, studentID)
	if err != nil {
		return nil, err
	}

	report := BuildTrainingReport(*record)
	monitoring.RecordReport(string(report.Statistics.Trend))

	if err := s.Cache.Set(ctx, studentID, &report); err != nil {
		logger.Log.Warn("Failed to cache training report",
			zap.String("studentId", studentID),
			zap.Error(err))
	}
	return &report, nil
}

// UpdateTrainingRecord 校验后写入并清除报告缓存
func (s *TrainingService) UpdateTrainingRecord(ctx context.Context, record *model.TrainingRecord) (err error) {
	ctx, span := tracing.StartSpan(ctx, "TrainingService.UpdateTrainingRecord", attribute.String("student_id", record.StudentID))
	defer func() { tracing.EndSpan(span, err) }()

	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", util.ErrInvalidTrainingRecord, err)
	}
	if err := s.Writer.UpsertTrainingRecord(ctx, record); err != nil {
		return err
	}
	if err := s.Cache.Invalidate(ctx, record.StudentID); err != nil {
		logger.Log.Warn("Failed to invalidate training report",
			zap.String("studentId", record.StudentID),
			zap.Error(err))
	}

	logger.Log.Info("Training record updated",
		zap.String("studentId", record.StudentID),
		zap.Int("weeks", len(record.WeeklyHours)),
		zap.Int("milestones", len(record.Milestones)))
	return nil
}

// GetCohortOverview 全届训练概览，每名队员的统计并发计算
func (s *TrainingService) GetCohortOverview(ctx context.Context) (_ *model.CohortOverview, err error) {
	ctx, span := tracing.StartSpan(ctx, "TrainingService.GetCohortOverview")
	defer func() { tracing.EndSpan(span, err) }()

	memberCount, err := s.Members.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.Records.ListTrainingRecords(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]model.DerivedStats, len(records))
	g, gctx := errgroup.WithContext(ctx)
	limit := s.Concurrency
	if limit < 1 {
		limit = defaultOverviewConcurrency
	}
	g.SetLimit(limit)

	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stats[i] = ComputeStatistics(records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &model.CohortOverview{
		MemberCount: int(memberCount),
		RecordCount: len(records),
		TrendDistribution: map[model.Trend]int{
			model.TrendImproving: 0,
			model.TrendStable:    0,
			model.TrendDeclining: 0,
		},
	}

	var rateSum float64
	for i, st := range stats {
		overview.TrendDistribution[st.Trend]++
		rateSum += st.AttendanceRate
		overview.TotalHours += recordHours(records[i])

		overview.Milestones.Total += st.TotalMilestones
		overview.Milestones.Training += st.TrainingMilestones
		overview.Milestones.Exam += st.ExamMilestones
		overview.Milestones.Event += st.EventMilestones
		overview.Milestones.Award += st.AwardMilestones
		overview.Milestones.Unrecognized += st.UnrecognizedMilestones
	}
	if len(stats) > 0 {
		overview.AverageAttendanceRate = roundTo1(rateSum / float64(len(stats)))
	}
	overview.TotalHours = roundTo1(overview.TotalHours)

	return overview, nil
}

// recordHours 未填写累计时长时按周记录求和
func recordHours(r model.TrainingRecord) float64 {
	if r.Statistics.TotalHours > 0 {
		return r.Statistics.TotalHours
	}
	var sum float64
	for _, h := range r.WeeklyHours {
		sum += h
	}
	return sum
}

// IsNotFound 资源不存在类错误
func IsNotFound(err error) bool {
	return errors.Is(err, util.ErrMemberNotFound) ||
		errors.Is(err, util.ErrTrainingRecordNotFound) ||
		errors.Is(err, util.ErrMessageNotFound)
}
