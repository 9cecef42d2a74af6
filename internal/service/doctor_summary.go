package service

import "hospital-dashboard/internal/domain/entity"

// DoctorSummary holds the directory summary cards.
type DoctorSummary struct {
	Total             int
	Available         int
	FullyBooked       int
	TodayAppointments int
	InQueue           int
}

// SummarizeDoctors derives the directory cards from the full doctor and
// appointment stores.
func SummarizeDoctors(doctors []entity.Doctor, appointments []entity.Appointment) DoctorSummary {
	summary := DoctorSummary{
		Total:             len(doctors),
		TodayAppointments: len(appointments),
	}
	for _, d := range doctors {
		if d.Available {
			summary.Available++
		} else {
			summary.FullyBooked++
		}
	}
	for i := range appointments {
		if appointments[i].InQueue() {
			summary.InQueue++
		}
	}
	return summary
}

// AppointmentsForDoctor returns the appointments referencing doctorID, in
// original relative order.
func AppointmentsForDoctor(appointments []entity.Appointment, doctorID string) []entity.Appointment {
	result := make([]entity.Appointment, 0)
	for _, a := range appointments {
		if a.DoctorID == doctorID {
			result = append(result, a)
		}
	}
	return result
}

// QueueAppointments returns scheduled and in-progress appointments in order.
func QueueAppointments(appointments []entity.Appointment) []entity.Appointment {
	result := make([]entity.Appointment, 0)
	for i := range appointments {
		if appointments[i].InQueue() {
			result = append(result, appointments[i])
		}
	}
	return result
}

// AppointmentStatusCounts tallies appointments per declared status.
// Statuses outside the declared set are not counted.
func AppointmentStatusCounts(appointments []entity.Appointment) map[entity.AppointmentStatus]int {
	counts := make(map[entity.AppointmentStatus]int, len(entity.AppointmentStatuses()))
	for _, s := range entity.AppointmentStatuses() {
		counts[s] = 0
	}
	for _, a := range appointments {
		if _, ok := counts[a.Status]; ok {
			counts[a.Status]++
		}
	}
	return counts
}

// CountPaid returns how many appointments are paid; everything else is unpaid.
func CountPaid(appointments []entity.Appointment) (paid, unpaid int) {
	for i := range appointments {
		if appointments[i].IsPaid() {
			paid++
		} else {
			unpaid++
		}
	}
	return paid, unpaid
}
