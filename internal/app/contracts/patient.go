package contracts

import (
	"clinic-portal/internal/app/models"
	"context"
)

type PatientClient interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, patient *models.Patient) (*models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
}
