package model

// Member 队员档案
type Member struct {
	BaseModel     `yaml:"-"`
	StudentID     string         `gorm:"uniqueIndex;size:20;not null" json:"studentId" yaml:"studentId"`
	Name          string         `gorm:"size:50;not null" json:"name" yaml:"name"`
	Class         string         `gorm:"size:100" json:"class" yaml:"class"`
	Position      string         `gorm:"size:50;index" json:"position" yaml:"position"`
	JoinDate      string         `gorm:"size:20" json:"joinDate" yaml:"joinDate"`
	Achievements  []string       `gorm:"serializer:json;type:json" json:"achievements" yaml:"achievements"`
	TrainingHours float64        `json:"trainingHours" yaml:"trainingHours"`
	Attendance    string         `gorm:"size:10" json:"attendance" yaml:"attendance"`
	Photos        map[string]int `gorm:"serializer:json;type:json" json:"photos" yaml:"photos"`
	IsDefault     bool           `gorm:"-" json:"isDefault,omitempty" yaml:"-"`
}

func (Member) TableName() string {
	return "members"
}

// DefaultMember 学号未登记时展示的通用档案
func DefaultMember(studentID string) *Member {
	return &Member{
		StudentID: studentID,
		Name:      "国旗护卫队队员",
		Class:     "天津大学",
		Position:  "预备队员",
		JoinDate:  "2023年",
		Achievements: []string{
			"圆满完成本学期训练",
			"坚持每周训练任务",
			"展现团队合作精神",
		},
		TrainingHours: 45,
		Attendance:    "95%",
		Photos: map[string]int{
			"training": 4,
			"exam":     2,
			"event":    2,
		},
		IsDefault: true,
	}
}
