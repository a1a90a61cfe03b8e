package security

import "time"

type AnomalyResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Severity       string  `json:"severity"`
	EmployeeID     string  `json:"employee_id,omitempty"`
	ClientIP       string  `json:"client_ip,omitempty"`
	Detail         string  `json:"detail"`
	Acknowledged   bool    `json:"acknowledged"`
	AcknowledgedBy *string `json:"acknowledged_by,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func mapToAnomalyResponse(a Anomaly) AnomalyResponse {
	resp := AnomalyResponse{
		ID:           a.ID.String(),
		Type:         a.Type,
		Severity:     a.Severity,
		EmployeeID:   a.EmployeeID,
		ClientIP:     a.ClientIP,
		Detail:       a.Detail,
		Acknowledged: a.Acknowledged,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.AcknowledgedBy != nil {
		id := a.AcknowledgedBy.String()
		resp.AcknowledgedBy = &id
	}
	return resp
}
