package model

// IsValidPhotoCategory 照片分类与里程碑类型一致
func IsValidPhotoCategory(category string) bool {
	return MilestoneType(category).Valid()
}

// Photo 队员照片元数据
type Photo struct {
	UUIDBase     `yaml:",inline"`
	StudentID    string   `gorm:"index;size:20;not null" json:"studentId" yaml:"-"`
	Src          string   `gorm:"size:255;not null" json:"src" yaml:"src"`
	ThumbnailSrc string   `gorm:"size:255" json:"thumbnailSrc,omitempty" yaml:"thumbnailSrc,omitempty"`
	Alt          string   `gorm:"size:100" json:"alt" yaml:"alt"`
	Category     string   `gorm:"size:20;index" json:"category" yaml:"category"`
	Date         string   `gorm:"size:20" json:"date" yaml:"date"`
	Description  string   `gorm:"size:255" json:"description" yaml:"description"`
	Tags         []string `gorm:"serializer:json;type:json" json:"tags" yaml:"tags"`
}

func (Photo) TableName() string {
	return "photos"
}
