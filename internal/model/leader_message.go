package model

// MessageCategoryAll 不筛选
const MessageCategoryAll = "all"

// LeaderMessage 队长与队委寄语
type LeaderMessage struct {
	BaseModel   `yaml:"-"`
	Code        string   `gorm:"uniqueIndex;size:50;not null" json:"id" yaml:"id"`
	Name        string   `gorm:"size:50;not null" json:"name" yaml:"name"`
	Position    string   `gorm:"size:100" json:"position" yaml:"position"`
	Avatar      string   `gorm:"size:255" json:"avatar" yaml:"avatar"`
	Roles       []string `gorm:"serializer:json;type:json" json:"roles" yaml:"roles"`
	Categories  []string `gorm:"serializer:json;type:json" json:"categories" yaml:"categories"`
	Excerpt     string   `gorm:"type:text" json:"excerpt" yaml:"excerpt"`
	Quote       string   `gorm:"type:text" json:"quote,omitempty" yaml:"quote,omitempty"`
	Highlight   string   `gorm:"size:255" json:"highlight,omitempty" yaml:"highlight,omitempty"`
	FullMessage []string `gorm:"serializer:json;type:json" json:"fullMessage" yaml:"fullMessage"`
	Date        string   `gorm:"size:20" json:"date" yaml:"date"`
	IsCaptain   bool     `gorm:"default:false" json:"isCaptain" yaml:"isCaptain"`
	SortOrder   int      `gorm:"default:0;index" json:"-" yaml:"-"`
}

func (LeaderMessage) TableName() string {
	return "leader_messages"
}

// HasCategory 是否属于某分类，all 匹配全部
func (m *LeaderMessage) HasCategory(category string) bool {
	if category == "" || category == MessageCategoryAll {
		return true
	}
	for _, c := range m.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MessageCategory 寄语分类按钮
type MessageCategory struct {
	ID        string `gorm:"primaryKey;size:50" json:"id" yaml:"id"`
	Name      string `gorm:"size:50;not null" json:"name" yaml:"name"`
	Icon      string `gorm:"size:50" json:"icon" yaml:"icon"`
	SortOrder int    `gorm:"default:0" json:"-" yaml:"-"`
}

func (MessageCategory) TableName() string {
	return "message_categories"
}

// MessageStats 寄语页统计
type MessageStats struct {
	TotalMessages int `json:"totalMessages" yaml:"totalMessages"`
	Categories    int `json:"categories" yaml:"categories"`
	Generations   int `json:"generations" yaml:"generations"`
}

const (
	DefaultMessagePageTitle    = "队长及队委寄语"
	DefaultMessagePageSubtitle = "传承护旗精神，寄语新一届队员"
	DefaultMessageGenerations  = 28
)

// DefaultMessagePageMeta 数据库模式下的页面标题，分类另行查询
func DefaultMessagePageMeta() MessagePageMeta {
	return MessagePageMeta{
		PageTitle:    DefaultMessagePageTitle,
		PageSubtitle: DefaultMessagePageSubtitle,
		Generations:  DefaultMessageGenerations,
	}
}

// MessagePageMeta 寄语页标题与分类
type MessagePageMeta struct {
	PageTitle    string            `json:"pageTitle" yaml:"pageTitle"`
	PageSubtitle string            `json:"pageSubtitle" yaml:"pageSubtitle"`
	Categories   []MessageCategory `json:"categories" yaml:"categories"`
	Generations  int               `json:"-" yaml:"generations"`
}

// MessagePage 寄语分页结果
type MessagePage struct {
	PageTitle    string            `json:"pageTitle"`
	PageSubtitle string            `json:"pageSubtitle"`
	Categories   []MessageCategory `json:"categories"`
	Stats        MessageStats      `json:"stats"`
	List         []LeaderMessage   `json:"list"`
	Total        int64             `json:"total"`
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
	TotalPages   int               `json:"totalPages"`
}
