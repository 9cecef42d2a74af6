package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type doctorRepository struct {
	doctors []entity.Doctor
}

func NewDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	return &doctorRepository{doctors: cloneDoctors(doctors)}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneDoctors(r.doctors), nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, doctor := range r.doctors {
		if doctor.ID == id {
			found := doctor.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

func cloneDoctors(doctors []entity.Doctor) []entity.Doctor {
	out := make([]entity.Doctor, len(doctors))
	for i, doctor := range doctors {
		out[i] = doctor.Clone()
	}
	return out
}
