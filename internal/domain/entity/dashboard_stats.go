package entity

// DashboardStats is the hospital-wide snapshot shown on the overview page.
// It is seeded as-is and not derived from the room or doctor stores.
type DashboardStats struct {
	TotalPatients         int     `yaml:"total_patients" json:"total_patients" validate:"gte=0"`
	TodayAdmissions       int     `yaml:"today_admissions" json:"today_admissions" validate:"gte=0"`
	TotalDoctors          int     `yaml:"total_doctors" json:"total_doctors" validate:"gte=0"`
	AvailableDoctors      int     `yaml:"available_doctors" json:"available_doctors" validate:"gte=0"`
	TotalRooms            int     `yaml:"total_rooms" json:"total_rooms" validate:"gte=0"`
	OccupiedRooms         int     `yaml:"occupied_rooms" json:"occupied_rooms" validate:"gte=0"`
	TodayRevenue          float64 `yaml:"today_revenue" json:"today_revenue" validate:"gte=0"`
	MonthlyRevenue        float64 `yaml:"monthly_revenue" json:"monthly_revenue" validate:"gte=0"`
	PendingBills          int     `yaml:"pending_bills" json:"pending_bills" validate:"gte=0"`
	EmergencyCases        int     `yaml:"emergency_cases" json:"emergency_cases" validate:"gte=0"`
	TodayAppointments     int     `yaml:"today_appointments" json:"today_appointments" validate:"gte=0"`
	CompletedAppointments int     `yaml:"completed_appointments" json:"completed_appointments" validate:"gte=0"`
	OccupancyRate         int     `yaml:"occupancy_rate" json:"occupancy_rate" validate:"gte=0,lte=100"`
	AvgStayDuration       float64 `yaml:"avg_stay_duration" json:"avg_stay_duration" validate:"gte=0"`
}
