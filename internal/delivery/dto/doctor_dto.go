package dto

// Request DTOs

type DoctorListRequest struct {
	Search       string `json:"search" validate:"max=100"`
	Department   string `json:"department" validate:"max=100"`
	Availability string `json:"availability" validate:"omitempty,oneof=all available busy"`
}

// Response DTOs

type ScheduleEntryResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	IsActive  bool   `json:"is_active"`
}

type DoctorResponse struct {
	ID                     string                  `json:"id"`
	Name                   string                  `json:"name"`
	NameBn                 string                  `json:"name_bn"`
	Specialization         string                  `json:"specialization"`
	Department             string                  `json:"department"`
	Qualification          string                  `json:"qualification"`
	Experience             int                     `json:"experience"`
	Rating                 float64                 `json:"rating"`
	TotalPatients          int                     `json:"total_patients"`
	Avatar                 string                  `json:"avatar"`
	Available              bool                    `json:"available"`
	ConsultationFee        float64                 `json:"consultation_fee"`
	ConsultationFeeDisplay string                  `json:"consultation_fee_display"`
	EmergencyFee           float64                 `json:"emergency_fee"`
	NextAvailable          string                  `json:"next_available"`
	TodayAppointments      int                     `json:"today_appointments"`
	MaxAppointments        int                     `json:"max_appointments"`
	LoadPercent            int                     `json:"load_percent"`
	Schedule               []ScheduleEntryResponse `json:"schedule"`
}

type DoctorListResponse struct {
	Doctors     []DoctorResponse `json:"doctors"`
	Total       int              `json:"total"`
	StoreTotal  int              `json:"store_total"`
	Departments []string         `json:"departments"`
}

type DoctorDetailResponse struct {
	Doctor           DoctorResponse        `json:"doctor"`
	Appointments     []AppointmentResponse `json:"appointments"`
	AppointmentCount int                   `json:"appointment_count"`
}

type DoctorSummaryResponse struct {
	Total             int `json:"total"`
	Available         int `json:"available"`
	FullyBooked       int `json:"fully_booked"`
	TodayAppointments int `json:"today_appointments"`
	InQueue           int `json:"in_queue"`
}
