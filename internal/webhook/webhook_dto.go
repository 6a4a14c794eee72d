package webhook

import "encoding/json"

// PayrollNotification is the body exchanged with the payroll system.
type PayrollNotification struct {
	EmployeeID int64           `json:"employee_id" binding:"required,gt=0"`
	Event      string          `json:"event" binding:"required"`
	Data       json.RawMessage `json:"data"`
}

type ReceivedResponse struct {
	Status string `json:"status"`
}
