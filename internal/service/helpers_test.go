package service

import "hospital-dashboard/internal/domain/entity"

func newRoom(id, number string, roomType entity.RoomType, status entity.RoomStatus, occupied, capacity int) entity.Room {
	r := entity.Room{
		ID:           id,
		Number:       number,
		Type:         roomType,
		Status:       status,
		Capacity:     capacity,
		Occupied:     occupied,
		PricePerHour: 100,
		PricePerDay:  1000,
		PricePerWeek: 6000,
		Features:     []string{"Bed"},
		ACType:       entity.ACTypeAC,
	}
	if status == entity.RoomStatusOccupied {
		r.Admission = &entity.Admission{PatientName: "Patient " + id, CurrentBill: 5000}
	}
	return r
}

func roomNumbers(rooms []entity.Room) []string {
	numbers := make([]string, len(rooms))
	for i, r := range rooms {
		numbers[i] = r.Number
	}
	return numbers
}

func testRooms() []entity.Room {
	r1 := newRoom("R1", "101", entity.RoomTypeGeneral, entity.RoomStatusOccupied, 3, 4)
	r1.Admission.PatientName = "Rahim Uddin"
	r2 := newRoom("R2", "102", entity.RoomTypeCabin, entity.RoomStatusAvailable, 0, 1)
	r3 := newRoom("R3", "201", entity.RoomTypeICU, entity.RoomStatusOccupied, 1, 1)
	r3.Admission.PatientName = "Fatema Begum"
	r4 := newRoom("R4", "G01", entity.RoomTypeEmergency, entity.RoomStatusMaintenance, 0, 2)
	r5 := newRoom("R5", "301", entity.RoomTypeVIP, entity.RoomStatusReserved, 0, 1)
	return []entity.Room{r1, r2, r3, r4, r5}
}

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "D1", Name: "Dr. Anisur Rahman", NameBn: "ডা. আনিসুর রহমান", Specialization: "Interventional Cardiology", Department: "Cardiology", Available: true},
		{ID: "D2", Name: "Dr. Nasreen Akter", NameBn: "ডা. নাসরিন আক্তার", Specialization: "Obstetrics", Department: "Gynecology", Available: true},
		{ID: "D3", Name: "Dr. Kamal Hossain", NameBn: "ডা. কামাল হোসেন", Specialization: "Neurosurgery", Department: "Neurology", Available: false},
		{ID: "D4", Name: "Dr. Shirin Sultana", NameBn: "ডা. শিরিন সুলতানা", Specialization: "Heart Failure", Department: "Cardiology", Available: false},
	}
}

func testAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: "A1", DoctorID: "D1", Status: entity.AppointmentStatusCompleted, PaymentStatus: entity.PaymentStatusPaid},
		{ID: "A2", DoctorID: "D2", Status: entity.AppointmentStatusScheduled, PaymentStatus: entity.PaymentStatusPending},
		{ID: "A3", DoctorID: "D1", Status: entity.AppointmentStatusInProgress, PaymentStatus: entity.PaymentStatusPartial},
		{ID: "A4", DoctorID: "D3", Status: entity.AppointmentStatusCancelled, PaymentStatus: entity.PaymentStatusOverdue},
		{ID: "A5", DoctorID: "D2", Status: entity.AppointmentStatusNoShow, PaymentStatus: entity.PaymentStatusPaid},
	}
}
