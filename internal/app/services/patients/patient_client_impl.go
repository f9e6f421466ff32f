package patients

import (
	"bytes"
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewPatientClient expects httpClient to carry the auth transport.
func NewPatientClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.PatientClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &patientClient{
		BaseUrl:    baseUrl + constvars.ResourcePatients,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *patientClient) patientURL(patientID string) string {
	return fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID))
}

func (c *patientClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	c.Log.Info("patientClient.ListPatients called",
		utils.RequestIDField(ctx),
	)

	resp, err := c.send(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error(constvars.DiagnosticListPatients,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNoContent:
		return []models.Patient{}, nil
	default:
		err = exceptions.ErrPatientAPIStatus("list patients", resp.StatusCode)
		c.Log.Error(constvars.DiagnosticListPatients,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	patients := []models.Patient{}
	err = json.NewDecoder(resp.Body).Decode(&patients)
	if err != nil {
		err = exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		c.Log.Error(constvars.DiagnosticListPatients,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.ListPatients succeeded",
		utils.RequestIDField(ctx),
		zap.Int(constvars.LoggingPatientsKey, len(patients)),
	)
	return patients, nil
}

func (c *patientClient) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	c.Log.Info("patientClient.GetPatientByID called",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := c.send(ctx, constvars.MethodGet, c.patientURL(patientID), nil)
	if err != nil {
		c.Log.Error(constvars.DiagnosticGetPatientByID,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNotFound:
		err = exceptions.ErrPatientNotFound(patientID)
		c.Log.Error(constvars.DiagnosticGetPatientByID,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	default:
		err = exceptions.ErrPatientAPIStatus("get patient", resp.StatusCode)
		c.Log.Error(constvars.DiagnosticGetPatientByID,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	patient := new(models.Patient)
	err = json.NewDecoder(resp.Body).Decode(patient)
	if err != nil {
		err = exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		c.Log.Error(constvars.DiagnosticGetPatientByID,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	return patient, nil
}

// UpdatePatient answers the submitted patient when the API replies 204.
func (c *patientClient) UpdatePatient(ctx context.Context, patientID string, patient *models.Patient) (*models.Patient, error) {
	c.Log.Info("patientClient.UpdatePatient called",
		utils.RequestIDField(ctx),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		err = exceptions.ErrCannotMarshalJSON(err)
		c.Log.Error(constvars.DiagnosticUpdatePatient,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	resp, err := c.send(ctx, constvars.MethodPut, c.patientURL(patientID), requestJSON)
	if err != nil {
		c.Log.Error(constvars.DiagnosticUpdatePatient,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNoContent:
		updated := *patient
		updated.ID = models.PatientID(patientID)
		return &updated, nil
	default:
		err = exceptions.ErrPatientAPIStatus("update patient", resp.StatusCode)
		c.Log.Error(constvars.DiagnosticUpdatePatient,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	updated := new(models.Patient)
	err = json.NewDecoder(resp.Body).Decode(updated)
	if err != nil {
		err = exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		c.Log.Error(constvars.DiagnosticUpdatePatient,
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.UpdatePatient succeeded",
		utils.RequestIDField(ctx),
		zap.Stringer(constvars.LoggingPatientIDKey, updated.ID),
	)
	return updated, nil
}

func (c *patientClient) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	c.Log.Info("patientClient.CreatePatient called",
		utils.RequestIDField(ctx),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		err = exceptions.ErrCannotMarshalJSON(err)
		c.Log.Error(constvars.DiagnosticCreatePatient,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	resp, err := c.send(ctx, constvars.MethodPost, c.BaseUrl, requestJSON)
	if err != nil {
		c.Log.Error(constvars.DiagnosticCreatePatient,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		err = exceptions.ErrPatientAPIStatus("create patient", resp.StatusCode)
		c.Log.Error(constvars.DiagnosticCreatePatient,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	created := new(models.Patient)
	err = json.NewDecoder(resp.Body).Decode(created)
	if err != nil {
		err = exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		c.Log.Error(constvars.DiagnosticCreatePatient,
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.CreatePatient succeeded",
		utils.RequestIDField(ctx),
		zap.Stringer(constvars.LoggingPatientIDKey, created.ID),
	)
	return created, nil
}

// send leaves closing resp.Body to the caller.
func (c *patientClient) send(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}
