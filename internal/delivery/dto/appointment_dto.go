package dto

import "github.com/google/uuid"

// Request DTOs

type CreateBookingRequest struct {
	PatientName   string `json:"patient_name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=6,max=20"`
	DoctorID      string `json:"doctor_id" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=regular emergency follow-up online"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=Cash bKash Nagad Card"`
	Notes         string `json:"notes" validate:"max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            string  `json:"id"`
	PatientName   string  `json:"patient_name"`
	PatientID     string  `json:"patient_id"`
	DoctorID      string  `json:"doctor_id"`
	DoctorName    string  `json:"doctor_name"`
	Department    string  `json:"department"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	TokenNumber   int     `json:"token_number"`
	PaymentStatus string  `json:"payment_status"`
	Paid          bool    `json:"paid"`
	Fee           float64 `json:"fee"`
	FeeDisplay    string  `json:"fee_display"`
}

type QueueResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	InQueue      int                   `json:"in_queue"`
	StatusCounts map[string]int        `json:"status_counts"`
}

type BookingDraftResponse struct {
	DraftID       uuid.UUID `json:"draft_id"`
	PatientName   string    `json:"patient_name"`
	Phone         string    `json:"phone"`
	DoctorID      string    `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	Department    string    `json:"department"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Fee           float64   `json:"fee"`
	FeeDisplay    string    `json:"fee_display"`
}
