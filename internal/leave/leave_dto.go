package leave

import (
	"time"
)

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	LeaveType string `json:"leave_type" binding:"omitempty,oneof=FULL HALF_AM HALF_PM"`
	Reason    string `json:"reason"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

type BulkApproveRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type GrantLeaveRequest struct {
	DaysToGrant float64 `json:"days_to_grant" binding:"required"`
	Reason      string  `json:"reason" binding:"required"`
	Deadline    string  `json:"deadline"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	LeaveType       string  `json:"leave_type"`
	DaysRequested   float64 `json:"days_requested"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type AccrualResponse struct {
	ID          string  `json:"id"`
	DaysGranted float64 `json:"days_granted"`
	GrantedAt   string  `json:"granted_at"`
	Deadline    string  `json:"deadline"`
	Source      string  `json:"source"`
	GrantedByID *string `json:"granted_by_id,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

type LeaveStatusResponse struct {
	RemainingDays float64  `json:"remaining_days"`
	NextGrantDate *string  `json:"next_grant_date,omitempty"`
	NextGrantDays *float64 `json:"next_grant_days,omitempty"`

	ObligatoryDaysTaken       float64 `json:"obligatory_days_taken"`
	ObligatoryTarget          float64 `json:"obligatory_target"`
	IsObligationMet           bool    `json:"is_obligation_met"`
	IsWarning                 bool    `json:"is_warning"`
	DaysRemainingToObligation float64 `json:"days_remaining_to_obligation"`
	ObligatoryDeadline        *string `json:"obligatory_deadline,omitempty"`
}

type MonitoringRow struct {
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	EmployeeID   string  `json:"employee_id"`
	FacilityName string  `json:"facility_name"`
	HiredAt      *string `json:"hired_at,omitempty"`

	CurrentPaidLeaveDays float64 `json:"current_paid_leave_days"`

	ObligatoryDaysTaken       float64 `json:"obligatory_days_taken"`
	ObligatoryTarget          float64 `json:"obligatory_target"`
	IsObligationMet           bool    `json:"is_obligation_met"`
	NeedsAttention            bool    `json:"needs_attention"`
	IsViolation               bool    `json:"is_violation"`
	DaysRemainingToObligation float64 `json:"days_remaining_to_obligation"`

	CurrentCycleStart *string `json:"current_cycle_start,omitempty"`
	CurrentCycleEnd   *string `json:"current_cycle_end,omitempty"`
}

const dateLayout = "2006-01-02"

func mapToResponse(p PaidLeave) LeaveResponse {
	days, _ := p.DaysRequested().Float64()
	return LeaveResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		StartDate:       p.StartDate.Format(dateLayout),
		EndDate:         p.EndDate.Format(dateLayout),
		LeaveType:       p.LeaveType,
		DaysRequested:   days,
		Reason:          p.Reason,
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(leaves []PaidLeave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, p := range leaves {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapAccrualToResponse(a Accrual) AccrualResponse {
	days, _ := a.DaysGranted.Float64()
	resp := AccrualResponse{
		ID:          a.ID.String(),
		DaysGranted: days,
		GrantedAt:   a.GrantedAt.Format(time.RFC3339),
		Deadline:    a.Deadline.Format(dateLayout),
		Source:      a.Source,
		Reason:      a.Reason,
	}
	if a.GrantedByID != nil {
		v := a.GrantedByID.String()
		resp.GrantedByID = &v
	}
	return resp
}

func mapStatusToResponse(balance BalanceResult, compliance ComplianceStatus) LeaveStatusResponse {
	remaining, _ := balance.Remaining.Float64()
	taken, _ := compliance.CurrentTaken.Float64()
	target, _ := compliance.Target.Float64()
	toGo, _ := compliance.DaysRemaining.Float64()

	resp := LeaveStatusResponse{
		RemainingDays:             remaining,
		ObligatoryDaysTaken:       taken,
		ObligatoryTarget:          target,
		IsObligationMet:           compliance.Met,
		IsWarning:                 compliance.Warning,
		DaysRemainingToObligation: toGo,
	}
	if balance.NextGrantDate != nil {
		d := balance.NextGrantDate.Format(dateLayout)
		resp.NextGrantDate = &d
		days, _ := balance.NextGrantDays.Float64()
		resp.NextGrantDays = &days
	}
	if compliance.Active {
		// The obligation deadline shown to users is the current cycle end.
		d := compliance.CycleEnd.Format(dateLayout)
		resp.ObligatoryDeadline = &d
	}
	return resp
}

func mapMonitoringRow(emp *Employee, balance BalanceResult, compliance ComplianceStatus) MonitoringRow {
	remaining, _ := balance.Remaining.Float64()
	taken, _ := compliance.CurrentTaken.Float64()
	target, _ := compliance.Target.Float64()
	toGo, _ := compliance.DaysRemaining.Float64()

	row := MonitoringRow{
		UserID:                    emp.ID.String(),
		UserName:                  emp.Name,
		EmployeeID:                emp.EmployeeCode,
		FacilityName:              emp.Facility,
		CurrentPaidLeaveDays:      remaining,
		ObligatoryDaysTaken:       taken,
		ObligatoryTarget:          target,
		IsObligationMet:           compliance.Met,
		NeedsAttention:            compliance.Warning,
		IsViolation:               compliance.Violation,
		DaysRemainingToObligation: toGo,
	}
	if emp.HiredAt != nil {
		d := emp.HiredAt.Format(dateLayout)
		row.HiredAt = &d
	}
	if compliance.Active {
		start := compliance.CycleStart.Format(dateLayout)
		end := compliance.CycleEnd.Format(dateLayout)
		row.CurrentCycleStart = &start
		row.CurrentCycleEnd = &end
	}
	return row
}

func zeroMonitoringRow(emp *Employee) MonitoringRow {
	return MonitoringRow{
		UserID:       emp.ID.String(),
		UserName:     emp.Name,
		EmployeeID:   emp.EmployeeCode,
		FacilityName: emp.Facility,
	}
}
