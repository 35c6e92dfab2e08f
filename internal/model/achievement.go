package model

// Achievement 成就目录条目
type Achievement struct {
	BaseModel   `yaml:"-"`
	Code        string `gorm:"uniqueIndex;size:50;not null" json:"id" yaml:"id"`
	Name        string `gorm:"size:100;not null" json:"name" yaml:"name"`
	Description string `gorm:"size:255" json:"description" yaml:"description"`
	Icon        string `gorm:"size:50" json:"icon" yaml:"icon"`
	Color       string `gorm:"size:20" json:"color" yaml:"color"`
	Level       int    `gorm:"default:1" json:"level" yaml:"level"`
	SortOrder   int    `gorm:"default:0" json:"-" yaml:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// MemberAchievement 队员获得的成就
type MemberAchievement struct {
	BaseModel
	StudentID       string `gorm:"uniqueIndex:idx_member_achievement;size:20;not null"`
	AchievementCode string `gorm:"uniqueIndex:idx_member_achievement;size:50;not null"`
}

func (MemberAchievement) TableName() string {
	return "member_achievements"
}

// DefaultAchievements 默认成就目录
func DefaultAchievements() []Achievement {
	return []Achievement{
		{Code: "perfect-attendance", Name: "全勤之星", Description: "连续一个月训练全勤", Icon: "fa-calendar-check", Color: "#4CAF50", Level: 1, SortOrder: 1},
		{Code: "100-hours", Name: "百时训练", Description: "累计训练时长超过100小时", Icon: "fa-clock", Color: "#2196F3", Level: 2, SortOrder: 2},
		{Code: "first-exam", Name: "考核新秀", Description: "完成第一次正式考核", Icon: "fa-clipboard-check", Color: "#FF9800", Level: 1, SortOrder: 3},
		{Code: "perfect-score", Name: "满分标兵", Description: "在考核中获得满分成绩", Icon: "fa-star", Color: "#FFD700", Level: 3, SortOrder: 4},
		{Code: "team-leader", Name: "队列骨干", Description: "担任队列训练小组长", Icon: "fa-users", Color: "#9C27B0", Level: 2, SortOrder: 5},
	}
}
