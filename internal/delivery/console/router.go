package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"hospital-dashboard/internal/delivery/console/handler"
	"hospital-dashboard/pkg/response"
)

// ErrUnknownPage is returned by Dispatch for a page name with no handler.
var ErrUnknownPage = errors.New("unknown page")

const DefaultPage = "dashboard"

// HandlerFunc renders one page to w. Page arguments follow the page name.
type HandlerFunc func(ctx context.Context, w io.Writer, args []string)

type Router struct {
	pages            map[string]HandlerFunc
	roomHandler      *handler.RoomHandler
	doctorHandler    *handler.DoctorHandler
	dashboardHandler *handler.DashboardHandler
}

func NewRouter(
	roomHandler *handler.RoomHandler,
	doctorHandler *handler.DoctorHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		pages:            make(map[string]HandlerFunc),
		roomHandler:      roomHandler,
		doctorHandler:    doctorHandler,
		dashboardHandler: dashboardHandler,
	}
}

func (r *Router) Setup() *Router {
	// Overview
	r.pages["dashboard"] = r.dashboardHandler.GetOverview

	// Rooms
	r.pages["rooms"] = r.roomHandler.ListRooms
	r.pages["room"] = r.roomHandler.GetRoom
	r.pages["room-summary"] = r.roomHandler.GetSummary
	r.pages["rent"] = r.roomHandler.CalculateRent
	r.pages["add-room"] = r.roomHandler.DraftRoom

	// Doctors and appointments
	r.pages["doctors"] = r.doctorHandler.ListDoctors
	r.pages["doctor"] = r.doctorHandler.GetDoctor
	r.pages["doctor-summary"] = r.doctorHandler.GetSummary
	r.pages["departments"] = r.doctorHandler.GetDepartments
	r.pages["queue"] = r.doctorHandler.GetQueue
	r.pages["book"] = r.doctorHandler.DraftBooking

	return r
}

// Pages returns the registered page names, sorted.
func (r *Router) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dispatch renders the page named by args[0], or the dashboard when args is empty.
func (r *Router) Dispatch(ctx context.Context, w io.Writer, args []string) error {
	page := DefaultPage
	if len(args) > 0 {
		page, args = args[0], args[1:]
	}

	h, ok := r.pages[page]
	if !ok {
		response.Error(w, fmt.Sprintf("Unknown page %q", page), r.Pages())
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	h(ctx, w, args)
	return nil
}
