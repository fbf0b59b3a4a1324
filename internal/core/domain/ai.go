package domain

// AIStatus tags every gateway response so callers can tell live, synthetic and failed answers apart.
type AIStatus string

const (
	AIStatusSuccess AIStatus = "success"
	AIStatusMock    AIStatus = "mock"
	AIStatusError   AIStatus = "error"
)

// AIResult is the structured reply of the AI gateway. It is never persisted.
type AIResult struct {
	Status   AIStatus `json:"status"`
	Response string   `json:"response"`
}

// DashboardStats is the read-only summary served to the dashboard.
type DashboardStats struct {
	TotalPatients     int     `json:"total_patients"`
	TotalAppointments int     `json:"total_appointments"`
	TotalRevenue      float64 `json:"total_revenue"`
	PendingRevenue    float64 `json:"pending_revenue"`
	TotalStaff        int     `json:"total_staff"`
	AvailableBeds     int     `json:"available_beds"`
	OccupiedBeds      int     `json:"occupied_beds"`
	PendingLabs       int     `json:"pending_labs"`
	ActiveAmbulances  int     `json:"active_ambulances"`
}
