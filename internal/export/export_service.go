package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/leave"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/manual"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

// csvBOM keeps Excel from mangling multibyte names.
var csvBOM = []byte{0xEF, 0xBB, 0xBF}

// UserSource is the slice of the user repository the exports need.
type UserSource interface {
	FindAll(ctx context.Context) ([]user.User, error)
	FindByFacilityIn(ctx context.Context, facilities []string) ([]user.User, error)
}

// ComplianceSource produces the leave monitoring rows for the requester's
// authority scope.
type ComplianceSource interface {
	Monitoring(ctx context.Context, requesterID string) ([]leave.MonitoringRow, error)
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	ProgressCSV(ctx context.Context, facility string) ([]byte, error)
	CompliancePDF(ctx context.Context, requesterID string) ([]byte, error)
}

type service struct {
	users      UserSource
	manuals    manual.Repository
	compliance ComplianceSource
	logger     *zap.Logger
}

func NewService(users UserSource, manuals manual.Repository, compliance ComplianceSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{users: users, manuals: manuals, compliance: compliance, logger: l}
}

func (s *service) ProgressCSV(ctx context.Context, facility string) ([]byte, error) {
	var (
		staff []user.User
		err   error
	)
	if facility == "" {
		staff, err = s.users.FindAll(ctx)
	} else {
		staff, err = s.users.FindByFacilityIn(ctx, []string{facility})
	}
	if err != nil {
		return nil, err
	}

	manuals, err := s.manuals.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, len(staff))
	for i, u := range staff {
		userIDs[i] = u.ID.String()
	}
	progress, err := s.manuals.FindProgressByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	// completed[userID][manualID] = version read
	completed := make(map[string]map[string]int)
	for _, p := range progress {
		uid := p.UserID.String()
		if completed[uid] == nil {
			completed[uid] = make(map[string]int)
		}
		completed[uid][p.ManualID.String()] = p.Version
	}

	sort.Slice(manuals, func(i, j int) bool { return manuals[i].Title < manuals[j].Title })

	var buf bytes.Buffer
	buf.Write(csvBOM)
	w := csv.NewWriter(&buf)

	header := []string{"employee_id", "name", "facility", "department"}
	for _, m := range manuals {
		header = append(header, m.Title)
	}
	header = append(header, "completion_rate")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, u := range staff {
		row := []string{u.EmployeeID, u.Name, u.Facility, u.Department}
		done := 0
		for _, m := range manuals {
			version, ok := completed[u.ID.String()][m.ID.String()]
			switch {
			case ok && version == m.Version:
				row = append(row, "completed")
				done++
			case ok:
				row = append(row, "outdated")
			default:
				row = append(row, "")
			}
		}
		rate := 0.0
		if len(manuals) > 0 {
			rate = float64(done) / float64(len(manuals))
		}
		row = append(row, fmt.Sprintf("%.0f%%", rate*100))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.logger.Info("progress csv generated",
		zap.String("facility", facility),
		zap.Int("users", len(staff)),
		zap.Int("manuals", len(manuals)),
	)
	return buf.Bytes(), nil
}

func (s *service) CompliancePDF(ctx context.Context, requesterID string) ([]byte, error) {
	rows, err := s.compliance.Monitoring(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Paid Leave Compliance Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	pdf.Ln(10)

	widths := []float64{30, 50, 40, 25, 25, 25, 25, 30}
	headers := []string{"Employee ID", "Name", "Facility", "Balance", "Taken", "Target", "Remaining", "Status"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		status := "OK"
		switch {
		case row.IsViolation:
			status = "VIOLATION"
		case row.NeedsAttention:
			status = "ATTENTION"
		case !row.IsObligationMet:
			status = "IN PROGRESS"
		}

		cells := []string{
			row.EmployeeID,
			row.UserName,
			row.FacilityName,
			fmt.Sprintf("%.1f", row.CurrentPaidLeaveDays),
			fmt.Sprintf("%.1f", row.ObligatoryDaysTaken),
			fmt.Sprintf("%.1f", row.ObligatoryTarget),
			fmt.Sprintf("%.1f", row.DaysRemainingToObligation),
			status,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	s.logger.Info("compliance pdf generated", zap.Int("rows", len(rows)))
	return buf.Bytes(), nil
}
