package service

import (
	"context"
	"encoding/csv"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"flagguard_backend/pkg/logger"
	"flagguard_backend/pkg/monitoring"
	"flagguard_backend/pkg/tracing"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// 表格列名
const (
	ColumnStudentID        = "学号"
	ColumnTrainingDate     = "训练日期"
	ColumnTrainingHours    = "训练时长"
	ColumnAttendance       = "出勤状态"
	ColumnEventType        = "事件类型"
	ColumnEventDate        = "日期"
	ColumnEventDescription = "事件描述"
	ColumnSignificance     = "重要性"
)

const (
	attendancePresent = "出勤"
	routineTraining   = "常规训练"
)

var eventTypeMapping = map[string]model.MilestoneType{
	"晚训":   model.MilestoneTraining,
	"大训练":  model.MilestoneTraining,
	"队列考核": model.MilestoneExam,
	"升旗考核": model.MilestoneExam,
	"入队仪式": model.MilestoneEvent,
	"表演活动": model.MilestoneEvent,
	"颁奖":   model.MilestoneAward,
}

// MapEventType 表格中的事件名映射为里程碑类型，未知名称归为训练
func MapEventType(eventName string) model.MilestoneType {
	if t, ok := eventTypeMapping[strings.TrimSpace(eventName)]; ok {
		return t
	}
	return model.MilestoneTraining
}

// ParseImportCSV 解析带中文表头的 CSV 导出文件
func ParseImportCSV(r io.Reader) ([]model.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", util.ErrInvalidImport)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidImport, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		index[name] = i
	}
	if _, ok := index[ColumnStudentID]; !ok {
		return nil, fmt.Errorf("%w: missing column %s", util.ErrInvalidImport, ColumnStudentID)
	}

	field := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []model.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrInvalidImport, err)
		}

		rows = append(rows, model.ImportRow{
			StudentID:        field(record, ColumnStudentID),
			TrainingDate:     field(record, ColumnTrainingDate),
			TrainingHours:    field(record, ColumnTrainingHours),
			AttendanceStatus: field(record, ColumnAttendance),
			EventType:        field(record, ColumnEventType),
			EventDate:        field(record, ColumnEventDate),
			EventDescription: field(record, ColumnEventDescription),
			Significance:     field(record, ColumnSignificance),
		})
	}
	return rows, nil
}

// ProcessResult 行数据按队员汇总的结果
type ProcessResult struct {
	Records      []model.TrainingRecord
	AcceptedRows int
	SkippedRows  int
	RejectedRows []model.RowError
}

// ProcessRows 按学号分组生成训练记录，队员顺序与首次出现的顺序一致
func ProcessRows(rows []model.ImportRow) ProcessResult {
	var result ProcessResult
	byStudent := make(map[string]*model.TrainingRecord)
	var order []string

	for i, row := range rows {
		rowNum := i + 1
		sid := strings.TrimSpace(row.StudentID)
		if sid == "" {
			result.RejectedRows = append(result.RejectedRows, model.RowError{Row: rowNum, Message: "missing " + ColumnStudentID})
			continue
		}

		hasTraining := strings.TrimSpace(row.TrainingDate) != "" && strings.TrimSpace(row.TrainingHours) != ""
		eventType := strings.TrimSpace(row.EventType)
		hasMilestone := eventType != "" && eventType != routineTraining

		var hours float64
		if hasTraining {
			h, err := util.ParseHours(row.TrainingHours)
			if err != nil || h < 0 {
				result.RejectedRows = append(result.RejectedRows, model.RowError{
					Row:       rowNum,
					StudentID: sid,
					Message:   fmt.Sprintf("invalid %s %q", ColumnTrainingHours, row.TrainingHours),
				})
				continue
			}
			hours = h
		}

		if !hasTraining && !hasMilestone {
			result.SkippedRows++
			continue
		}

		record, ok := byStudent[sid]
		if !ok {
			record = &model.TrainingRecord{
				StudentID:   sid,
				WeeklyHours: []float64{},
				Milestones:  []model.Milestone{},
			}
			byStudent[sid] = record
			order = append(order, sid)
		}

		if hasTraining {
			record.WeeklyHours = append(record.WeeklyHours, hours)
			record.Statistics.TotalTrainings++
			record.Statistics.TotalHours += hours
			if strings.TrimSpace(row.AttendanceStatus) == attendancePresent {
				record.Statistics.Attendances++
			}
		}

		if hasMilestone {
			significance := strings.TrimSpace(row.Significance)
			record.Milestones = append(record.Milestones, model.Milestone{
				Date:            strings.TrimSpace(row.EventDate),
				Event:           eventType,
				Type:            MapEventType(eventType),
				Description:     strings.TrimSpace(row.EventDescription),
				Significance:    significance,
				FirstOccurrence: strings.Contains(significance, FirstOccurrenceMarker),
			})
		}
		result.AcceptedRows++
	}

	result.Records = make([]model.TrainingRecord, 0, len(order))
	for _, sid := range order {
		record := byStudent[sid]
		finalizeStatistics(record)
		result.Records = append(result.Records, *record)
	}
	return result
}

func finalizeStatistics(record *model.TrainingRecord) {
	s := &record.Statistics
	s.TotalHours = roundTo1(s.TotalHours)
	// 均值不取整，建议规则按原值比较
	s.AverageWeeklyHours = mean(record.WeeklyHours)
	s.MaxWeeklyHours = maxOf(record.WeeklyHours)
	s.AttendanceRate = AttendanceRate(s.Attendances, s.TotalTrainings)
}

type ImportService struct {
	Writer TrainingRecordWriter
	Cache  ReportCache
}

func NewImportService(writer TrainingRecordWriter, cache ReportCache) *ImportService {
	return &ImportService{Writer: writer, Cache: cache}
}

// Import 汇总行数据，逐个队员校验并写入，单个队员失败不影响其他队员
func (s *ImportService) Import(ctx context.Context, rows []model.ImportRow) (_ *model.ImportSummary, err error) {
	ctx, span := tracing.StartSpan(ctx, "ImportService.Import", attribute.Int("rows", len(rows)))
	defer func() { tracing.EndSpan(span, err) }()

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", util.ErrInvalidImport)
	}

	processed := ProcessRows(rows)
	monitoring.RecordImportRows(monitoring.ImportRowAccepted, processed.AcceptedRows)
	monitoring.RecordImportRows(monitoring.ImportRowSkipped, processed.SkippedRows)
	monitoring.RecordImportRows(monitoring.ImportRowRejected, len(processed.RejectedRows))

	summary := &model.ImportSummary{
		Rows:         len(rows),
		SkippedRows:  processed.SkippedRows,
		RejectedRows: processed.RejectedRows,
		Results:      make([]model.ImportResult, 0, len(processed.Records)),
	}
	if summary.RejectedRows == nil {
		summary.RejectedRows = []model.RowError{}
	}

	var imported []string
	for i := range processed.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record := &processed.Records[i]
		result := model.ImportResult{
			StudentID:  record.StudentID,
			Weeks:      len(record.WeeklyHours),
			Milestones: len(record.Milestones),
		}

		if err := record.Validate(); err != nil {
			result.Error = err.Error()
		} else if err := s.Writer.UpsertTrainingRecord(ctx, record); err != nil {
			logger.Log.Error("Failed to import training record",
				zap.String("studentId", record.StudentID),
				zap.Error(err))
			result.Error = "failed to save training record"
		} else {
			result.Success = true
			imported = append(imported, record.StudentID)
		}

		if result.Success {
			summary.Imported++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	if err := s.Cache.Invalidate(ctx, imported...); err != nil {
		logger.Log.Warn("Failed to invalidate imported training reports", zap.Error(err))
	}

	logger.Log.Info("Training data imported",
		zap.Int("rows", summary.Rows),
		zap.Int("imported", summary.Imported),
		zap.Int("failed", summary.Failed),
		zap.Int("skippedRows", summary.SkippedRows),
		zap.Int("rejectedRows", len(summary.RejectedRows)))
	return summary, nil
}
