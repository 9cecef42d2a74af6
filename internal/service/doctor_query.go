package service

import "hospital-dashboard/internal/domain/entity"

// MatchDoctor reports whether doctor passes the text query, the department
// selector and the availability selector.
//
// Name and specialization match case-insensitively. NameBn is matched against the
// raw query because Bangla has no letter case.
func MatchDoctor(doctor *entity.Doctor, filter entity.DoctorFilter) bool {
	return matchDoctor(newTextMatcher(filter.Query), doctor, filter)
}

// FilterDoctors returns the doctors accepted by filter, in store order.
func FilterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	text := newTextMatcher(filter.Query)
	result := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		if matchDoctor(text, &doctors[i], filter) {
			result = append(result, doctors[i])
		}
	}
	return result
}

// AvailableDoctors is the booking form's doctor picker.
func AvailableDoctors(doctors []entity.Doctor) []entity.Doctor {
	return FilterDoctors(doctors, entity.DoctorFilter{Availability: entity.AvailabilityAvailable})
}

// Departments lists distinct departments in first-seen order.
func Departments(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	departments := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Department]; ok {
			continue
		}
		seen[d.Department] = struct{}{}
		departments = append(departments, d.Department)
	}
	return departments
}

func matchDoctor(text *textMatcher, doctor *entity.Doctor, filter entity.DoctorFilter) bool {
	matchesText := text.empty() ||
		text.matchFold(doctor.Name) ||
		text.matchFold(doctor.Specialization) ||
		text.matchExact(doctor.NameBn)

	return matchesText &&
		matchesCategory(filter.Department, doctor.Department) &&
		matchesAvailability(filter.Availability, doctor.Available)
}

// matchesAvailability maps the tri-state selector onto the boolean field.
// An unrecognised selector matches nothing.
func matchesAvailability(selected entity.Availability, available bool) bool {
	switch selected {
	case "", entity.AvailabilityAll:
		return true
	case entity.AvailabilityAvailable:
		return available
	case entity.AvailabilityBusy:
		return !available
	default:
		return false
	}
}
