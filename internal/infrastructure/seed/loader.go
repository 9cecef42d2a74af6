package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/pkg/validator"

	playground "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"go.yaml.in/yaml/v3"
)

// ErrInvalidRecord is returned when a seed record fails validation.
var ErrInvalidRecord = errors.New("invalid seed record")

const (
	RoomsFile        = "rooms.yaml"
	DoctorsFile      = "doctors.yaml"
	AppointmentsFile = "appointments.yaml"
	StatsFile        = "stats.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// Dataset is the full, validated record set supplied at start-up.
type Dataset struct {
	Rooms        []entity.Room
	Doctors      []entity.Doctor
	Appointments []entity.Appointment
	Stats        entity.DashboardStats
}

// Embedded returns the seed compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Source picks the seed directory, falling back to the embedded seed.
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

type Loader struct {
	validator *validator.CustomValidator
	log       *logrus.Logger
}

// NewLoader registers the room admission rule on v.
func NewLoader(v *validator.CustomValidator, log *logrus.Logger) *Loader {
	v.RegisterStructValidation(roomAdmissionRule, entity.Room{})
	return &Loader{validator: v, log: log}
}

// Load decodes the four seed documents concurrently, then validates every record
// and the appointment → doctor references.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) (*Dataset, error) {
	var (
		rooms        []entity.Room
		doctors      []entity.Doctor
		appointments []entity.Appointment
		stats        entity.DashboardStats
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error { return decodeFile(ctx, fsys, RoomsFile, &rooms) })
	p.Go(func(ctx context.Context) error { return decodeFile(ctx, fsys, DoctorsFile, &doctors) })
	p.Go(func(ctx context.Context) error { return decodeFile(ctx, fsys, AppointmentsFile, &appointments) })
	p.Go(func(ctx context.Context) error { return decodeFile(ctx, fsys, StatsFile, &stats) })
	if err := p.Wait(); err != nil {
		return nil, err
	}

	for i := range rooms {
		if err := l.validate(RoomsFile, rooms[i].ID, &rooms[i]); err != nil {
			return nil, err
		}
	}

	doctorIDs := make(map[string]struct{}, len(doctors))
	for i := range doctors {
		if err := l.validate(DoctorsFile, doctors[i].ID, &doctors[i]); err != nil {
			return nil, err
		}
		doctorIDs[doctors[i].ID] = struct{}{}
	}

	for i := range appointments {
		if err := l.validate(AppointmentsFile, appointments[i].ID, &appointments[i]); err != nil {
			return nil, err
		}
		if _, ok := doctorIDs[appointments[i].DoctorID]; !ok {
			return nil, fmt.Errorf("%s: appointment %s references unknown doctor %s: %w",
				AppointmentsFile, appointments[i].ID, appointments[i].DoctorID, ErrInvalidRecord)
		}
	}

	if err := l.validate(StatsFile, "stats", &stats); err != nil {
		return nil, err
	}

	l.log.Infof("Seed loaded: %d rooms, %d doctors, %d appointments", len(rooms), len(doctors), len(appointments))

	return &Dataset{
		Rooms:        rooms,
		Doctors:      doctors,
		Appointments: appointments,
		Stats:        stats,
	}, nil
}

func (l *Loader) validate(file, id string, record interface{}) error {
	if err := l.validator.Validate(record); err != nil {
		l.log.Warnf("Rejected %s record %s: %v", file, id, l.validator.FormatValidationErrors(err))
		return fmt.Errorf("%s: record %s: %w: %v", file, id, ErrInvalidRecord, err)
	}
	return nil
}

func decodeFile(ctx context.Context, fsys fs.FS, name string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode seed %s: %w", name, err)
	}
	return nil
}

// roomAdmissionRule enforces that only occupied rooms carry an admission.
func roomAdmissionRule(sl playground.StructLevel) {
	room := sl.Current().Interface().(entity.Room)
	if !room.HasConsistentAdmission() {
		sl.ReportError(room.Admission, "Admission", "admission", "admission_status", string(room.Status))
	}
}
