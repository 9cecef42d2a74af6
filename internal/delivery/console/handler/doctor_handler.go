package handler

import (
	"context"
	"io"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(ctx context.Context, w io.Writer, args []string) {
	var req dto.DoctorListRequest
	fs := newFlagSet("doctors")
	fs.StringVarP(&req.Search, "search", "q", "", "name, specialization or Bangla name")
	fs.StringVar(&req.Department, "department", "all", "department")
	fs.StringVar(&req.Availability, "availability", "all", "all, available or busy")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.doctorUsecase.ListDoctors(ctx, &req)
	if err != nil {
		response.InternalError(w, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, "Doctors retrieved successfully", doctors, &response.Meta{
		Total:    doctors.StoreTotal,
		Filtered: doctors.Total,
	})
}

func (h *DoctorHandler) GetDoctor(ctx context.Context, w io.Writer, args []string) {
	var doctorID string
	fs := newFlagSet("doctor")
	fs.StringVar(&doctorID, "id", "", "doctor id")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}
	if doctorID == "" && fs.NArg() > 0 {
		doctorID = fs.Arg(0)
	}
	if doctorID == "" {
		response.Error(w, "Doctor ID is required", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(ctx, doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalError(w, "Failed to get doctor")
		return
	}

	response.Success(w, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSummary(ctx context.Context, w io.Writer, args []string) {
	summary, err := h.doctorUsecase.GetSummary(ctx)
	if err != nil {
		response.InternalError(w, "Failed to get doctor summary")
		return
	}

	response.Success(w, "Doctor summary retrieved successfully", summary)
}

func (h *DoctorHandler) GetDepartments(ctx context.Context, w io.Writer, args []string) {
	departments, err := h.doctorUsecase.GetDepartments(ctx)
	if err != nil {
		response.InternalError(w, "Failed to get departments")
		return
	}

	response.Success(w, "Departments retrieved successfully", departments)
}

func (h *DoctorHandler) GetQueue(ctx context.Context, w io.Writer, args []string) {
	queue, err := h.doctorUsecase.GetQueue(ctx)
	if err != nil {
		response.InternalError(w, "Failed to get queue")
		return
	}

	response.Success(w, "Queue retrieved successfully", queue)
}

func (h *DoctorHandler) DraftBooking(ctx context.Context, w io.Writer, args []string) {
	var req dto.CreateBookingRequest
	fs := newFlagSet("book")
	fs.StringVar(&req.PatientName, "patient", "", "patient name")
	fs.StringVar(&req.Phone, "phone", "", "contact phone")
	fs.StringVar(&req.DoctorID, "doctor", "", "doctor id")
	fs.StringVar(&req.Date, "date", "", "appointment date, YYYY-MM-DD")
	fs.StringVar(&req.Time, "time", "", "time slot, e.g. \"09:30 AM\"")
	fs.StringVar(&req.Type, "type", "regular", "regular, emergency, follow-up or online")
	fs.StringVar(&req.PaymentMethod, "payment", "Cash", "Cash, bKash, Nagad or Card")
	fs.StringVar(&req.Notes, "notes", "", "notes for the doctor")
	if err := fs.Parse(args); err != nil {
		response.Error(w, "Invalid arguments", err.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.doctorUsecase.DraftBooking(ctx, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorUnavailable:
			response.Error(w, "Doctor is not accepting appointments", nil)
		case usecase.ErrInvalidTimeSlot:
			response.Error(w, "Invalid time slot", usecase.BookingTimeSlots)
		default:
			response.InternalError(w, "Failed to draft booking")
		}
		return
	}

	response.Success(w, "Booking draft created successfully", draft)
}
