package domain

type AnalyticsOverview struct {
	TotalDocuments       int     `json:"totalDocuments"`
	DocumentsLast30Days  int     `json:"documentsLast30Days"`
	DocumentsLast7Days   int     `json:"documentsLast7Days"`
	DocumentsToday       int     `json:"documentsToday"`
	SuccessfulProcessing int     `json:"successfulProcessing"`
	FailedProcessing     int     `json:"failedProcessing"`
	SuccessRate          float64 `json:"successRate"`
}

type MethodStat struct {
	Method            ProcessingMethod `json:"method"`
	Count             int              `json:"count"`
	AvgProcessingTime int64            `json:"avgProcessingTime"`
}

type TypeStat struct {
	Type          DocumentType `json:"type"`
	Count         int          `json:"count"`
	AvgTextLength int          `json:"avgTextLength"`
	AvgFileSize   int64        `json:"avgFileSize"`
}

type ErrorStat struct {
	Type  ErrorType `json:"type"`
	Count int       `json:"count"`
}

// DayStat is one calendar-day activity bucket (UTC).
type DayStat struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

type PerformanceStats struct {
	AvgProcessingTime   int64 `json:"avgProcessingTime"`
	MinProcessingTime   int64 `json:"minProcessingTime"`
	MaxProcessingTime   int64 `json:"maxProcessingTime"`
	AvgTextLength       int   `json:"avgTextLength"`
	AvgFileSize         int64 `json:"avgFileSize"`
	TotalTextProcessed  int64 `json:"totalTextProcessed"`
	TotalFilesProcessed int64 `json:"totalFilesProcessed"`
}

// AnalyticsSnapshot is the time-bucketed aggregation served to the dashboard.
type AnalyticsSnapshot struct {
	Overview          AnalyticsOverview `json:"overview"`
	ProcessingMethods []MethodStat      `json:"processingMethods"`
	DocumentTypes     []TypeStat        `json:"documentTypes"`
	ErrorTypes        []ErrorStat       `json:"errorTypes"`
	DailyActivity     []DayStat         `json:"dailyActivity"`
	Performance       *PerformanceStats `json:"performance"`
	RecentActivity    []Record          `json:"recentActivity"`
	Warning           string            `json:"warning,omitempty"`
}

// EmptyAnalytics is the zeroed-but-well-formed snapshot for read failures.
func EmptyAnalytics(warning string) AnalyticsSnapshot {
	return AnalyticsSnapshot{
		ProcessingMethods: []MethodStat{},
		DocumentTypes:     []TypeStat{},
		ErrorTypes:        []ErrorStat{},
		DailyActivity:     []DayStat{},
		RecentActivity:    []Record{},
		Warning:           warning,
	}
}
