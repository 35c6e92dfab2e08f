package repository

import "flagguard_backend/internal/service"

var (
	_ service.MemberSource         = (*MemberRepository)(nil)
	_ service.TrainingRecordSource = (*TrainingRepository)(nil)
	_ service.TrainingRecordWriter = (*TrainingRepository)(nil)
	_ service.AchievementSource    = (*AchievementRepository)(nil)
	_ service.PhotoSource          = (*PhotoRepository)(nil)
	_ service.PhotoWriter          = (*PhotoRepository)(nil)
	_ service.LeaderMessageSource  = (*LeaderMessageRepository)(nil)

	_ service.MemberSource         = (*StaticStore)(nil)
	_ service.TrainingRecordSource = (*StaticStore)(nil)
	_ service.TrainingRecordWriter = (*StaticStore)(nil)
	_ service.AchievementSource    = (*StaticStore)(nil)
	_ service.PhotoSource          = (*StaticStore)(nil)
	_ service.PhotoWriter          = (*StaticStore)(nil)
	_ service.LeaderMessageSource  = (*StaticStore)(nil)

	_ service.ReportCache = (*RedisReportCache)(nil)
	_ service.ReportCache = NoopReportCache{}
)
