package dto

type StatCardResponse struct {
	Title    string `json:"title"`
	TitleBn  string `json:"title_bn"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
}

type QuickStatResponse struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type PaymentSplitResponse struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
}

type DashboardResponse struct {
	StatCards          []StatCardResponse    `json:"stat_cards"`
	QuickStats         []QuickStatResponse   `json:"quick_stats"`
	RecentAppointments []AppointmentResponse `json:"recent_appointments"`
	CriticalRooms      []RoomResponse        `json:"critical_rooms"`
	Payments           PaymentSplitResponse  `json:"payments"`
}
