package model

// ImportRow 训练记录表格的一行，列名沿用表格中文表头
type ImportRow struct {
	StudentID        string `json:"学号"`
	TrainingDate     string `json:"训练日期"`
	TrainingHours    string `json:"训练时长"`
	AttendanceStatus string `json:"出勤状态"`
	EventType        string `json:"事件类型"`
	EventDate        string `json:"日期"`
	EventDescription string `json:"事件描述"`
	Significance     string `json:"重要性"`
}

// ImportResult 单个队员的导入结果
type ImportResult struct {
	StudentID  string `json:"studentId"`
	Weeks      int    `json:"weeks"`
	Milestones int    `json:"milestones"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// RowError 无法解析的行，Row 从 1 开始（不含表头）
type RowError struct {
	Row       int    `json:"row"`
	StudentID string `json:"studentId,omitempty"`
	Message   string `json:"message"`
}

// ImportSummary 导入汇总
type ImportSummary struct {
	Rows         int            `json:"rows"`
	SkippedRows  int            `json:"skippedRows"`
	RejectedRows []RowError     `json:"rejectedRows"`
	Imported     int            `json:"imported"`
	Failed       int            `json:"failed"`
	Results      []ImportResult `json:"results"`
}
