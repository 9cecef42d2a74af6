package entity

import (
	"math"
	"slices"
)

// DoctorSchedule is one weekday entry of a doctor's weekly roster
type DoctorSchedule struct {
	Day       string `yaml:"day" json:"day" validate:"required"`
	StartTime string `yaml:"start_time" json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `yaml:"end_time" json:"end_time" validate:"omitempty,datetime=15:04"`
	IsActive  bool   `yaml:"is_active" json:"is_active"`
}

// Doctor represents a doctor listed in the directory
type Doctor struct {
	ID                string           `yaml:"id" json:"id" validate:"required"`
	Name              string           `yaml:"name" json:"name" validate:"required"`
	NameBn            string           `yaml:"name_bn" json:"name_bn"`
	Specialization    string           `yaml:"specialization" json:"specialization" validate:"required"`
	Department        string           `yaml:"department" json:"department" validate:"required"`
	Qualification     string           `yaml:"qualification" json:"qualification"`
	Experience        int              `yaml:"experience" json:"experience" validate:"gte=0"`
	Rating            float64          `yaml:"rating" json:"rating" validate:"gte=0,lte=5"`
	TotalPatients     int              `yaml:"total_patients" json:"total_patients" validate:"gte=0"`
	Avatar            string           `yaml:"avatar" json:"avatar"`
	Available         bool             `yaml:"available" json:"available"`
	Schedule          []DoctorSchedule `yaml:"schedule" json:"schedule" validate:"len=7,dive"`
	ConsultationFee   float64          `yaml:"consultation_fee" json:"consultation_fee" validate:"gte=0"`
	EmergencyFee      float64          `yaml:"emergency_fee" json:"emergency_fee" validate:"gte=0"`
	Phone             string           `yaml:"phone" json:"phone"`
	Email             string           `yaml:"email" json:"email" validate:"omitempty,email"`
	NextAvailable     string           `yaml:"next_available" json:"next_available"`
	TodayAppointments int              `yaml:"today_appointments" json:"today_appointments" validate:"gte=0"`
	MaxAppointments   int              `yaml:"max_appointments" json:"max_appointments" validate:"gte=0"`
}

// LoadPercent is today's appointments as a share of the daily maximum, capped at 100.
// A doctor without a positive maximum reports 0.
func (d *Doctor) LoadPercent() int {
	if d.MaxAppointments <= 0 {
		return 0
	}
	pct := int(math.Round(float64(d.TodayAppointments) / float64(d.MaxAppointments) * 100))
	return min(pct, 100)
}

// ActiveDays returns the schedule entries flagged active, in roster order.
func (d *Doctor) ActiveDays() []DoctorSchedule {
	var days []DoctorSchedule
	for _, s := range d.Schedule {
		if s.IsActive {
			days = append(days, s)
		}
	}
	return days
}

func (d Doctor) Clone() Doctor {
	d.Schedule = slices.Clone(d.Schedule)
	return d
}
