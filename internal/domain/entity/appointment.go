package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no-show"
)

// AppointmentStatuses returns every appointment status in display order.
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
}

type AppointmentType string

const (
	AppointmentTypeRegular   AppointmentType = "regular"
	AppointmentTypeEmergency AppointmentType = "emergency"
	AppointmentTypeFollowUp  AppointmentType = "follow-up"
	AppointmentTypeOnline    AppointmentType = "online"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Appointment is a patient visit booked against a doctor
type Appointment struct {
	ID            string            `yaml:"id" json:"id" validate:"required"`
	PatientName   string            `yaml:"patient_name" json:"patient_name" validate:"required"`
	PatientID     string            `yaml:"patient_id" json:"patient_id"`
	DoctorID      string            `yaml:"doctor_id" json:"doctor_id" validate:"required"`
	DoctorName    string            `yaml:"doctor_name" json:"doctor_name"`
	Department    string            `yaml:"department" json:"department"`
	Date          string            `yaml:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time          string            `yaml:"time" json:"time"`
	Status        AppointmentStatus `yaml:"status" json:"status" validate:"oneof=scheduled in-progress completed cancelled no-show"`
	Type          AppointmentType   `yaml:"type" json:"type" validate:"oneof=regular emergency follow-up online"`
	TokenNumber   int               `yaml:"token_number" json:"token_number" validate:"gte=0"`
	PaymentStatus PaymentStatus     `yaml:"payment_status" json:"payment_status" validate:"oneof=paid pending partial overdue"`
	Fee           float64           `yaml:"fee" json:"fee" validate:"gte=0"`
}

// IsPaid checks if the appointment fee is fully settled
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusPaid
}

// InQueue checks if the patient is still waiting or being seen
func (a *Appointment) InQueue() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusInProgress
}
