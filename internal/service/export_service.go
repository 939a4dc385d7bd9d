package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"kriah-trainer/backend/config"
	"kriah-trainer/backend/internal/plan"
	"kriah-trainer/backend/internal/repository"
)

// Export service errors.
var (
	ErrExportNoSessions   = errors.New("no sessions to export")
	ErrExportGenerateFail = errors.New("generating export file failed")
)

// ExportService produces downloadable views of a user's practice data.
//
// Both exports return a filled buffer plus a suggested filename; the handler
// layer sets the HTTP headers and streams the buffer out.
type ExportService interface {
	// ExportSessions writes the user's full session history as an .xlsx
	// workbook.
	ExportSessions(ctx context.Context, userID string) (*bytes.Buffer, string, error)
	// ExportWeekCalendar renders the user's current plan week as an .ics
	// calendar, one all-day event per time block.
	ExportWeekCalendar(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg     *config.Config
	repo    *repository.Repository
	planSvc PlanService
	logger  *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, planSvc PlanService, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, planSvc: planSvc, logger: logger}
}

func (s *exportService) ExportSessions(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	sessions, err := s.repo.Session.ListByUser(ctx, userID, "")
	if err != nil {
		s.logger.Error("loading sessions for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}

	// oldest first reads better in a spreadsheet
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.Before(sessions[j].Date)
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Practice Log"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "Date")
	f.SetCellValue(sheetName, "B1", "Mode")
	f.SetCellValue(sheetName, "C1", "Minutes")
	f.SetCellValue(sheetName, "D1", "Recording")
	f.SetCellStyle(sheetName, "A1", "D1", headerStyle)

	row := 2
	total := 0
	for _, sess := range sessions {
		f.SetCellValue(sheetName, cell("A", row), sess.Date.Format(dateLayout))
		f.SetCellValue(sheetName, cell("B", row), sess.Mode)
		f.SetCellValue(sheetName, cell("C", row), sess.Minutes)
		if sess.RecordingPath != nil {
			f.SetCellValue(sheetName, cell("D", row), "yes")
		}
		total += sess.Minutes
		row++
	}

	f.SetCellValue(sheetName, cell("A", row), "Total")
	f.SetCellValue(sheetName, cell("C", row), total)
	f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("practice_log_%s.xlsx", todayLocal(s.cfg.Plan.TZOffsetHours).Format(dateLayout))
	return buf, filename, nil
}

func (s *exportService) ExportWeekCalendar(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	pos, pref, err := s.planSvc.Position(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	p, ok := plan.PlanByLength(pref.PlanWeeks)
	if !ok {
		return nil, "", ErrInvalidPlanWeeks
	}
	week := p.WeekAt(pos.Week)

	// the calendar week starts where the plan week does; with no sessions
	// yet it starts today
	weekStart := todayLocal(s.cfg.Plan.TZOffsetHours)
	if pos.StartDate != nil {
		weekStart = pos.StartDate.AddDate(0, 0, (pos.Week-1)*7)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//kriah-trainer//practice-plan//EN")

	for day := 0; day < 7; day++ {
		date := weekStart.AddDate(0, 0, day)
		for _, block := range week.Blocks {
			evt := cal.AddEvent(uuid.NewString())
			evt.SetCreatedTime(time.Now())
			evt.SetDtStampTime(time.Now())
			evt.SetAllDayStartAt(date)
			evt.SetAllDayEndAt(date.AddDate(0, 0, 1))
			evt.SetSummary(fmt.Sprintf("%s (%s)", block.Label, block.Time))
			evt.SetDescription(fmt.Sprintf("Week %d — %s: %s", week.Week, week.Title, block.Body))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("practice_week_%d.ics", week.Week)
	return buf, filename, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
