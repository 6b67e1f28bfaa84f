package domain

type Report struct {
	ID          int64
	Name        string
	Template    string
	Description *string
}

type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatXLS  ReportFormat = "xls"
)

// ExportFormat проверяет формат выгрузки: допускаются только pdf и xls.
func ExportFormat(format string) (ReportFormat, error) {
	switch ReportFormat(format) {
	case ReportFormatPDF, ReportFormatXLS:
		return ReportFormat(format), nil
	default:
		return "", NewValidationError("unsupported report format: %s", format)
	}
}

func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatPDF:
		return "application/pdf"
	case ReportFormatXLS:
		return "application/vnd.ms-excel"
	default:
		return "text/html; charset=utf-8"
	}
}

// VolunteerOccupancy - строка отчета о занятости волонтера
type VolunteerOccupancy struct {
	VolunteerID    int64
	FullName       string
	Email          string
	TotalTasks     int
	ActiveTasks    int
	CompletedTasks int
}
