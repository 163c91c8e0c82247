package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"rental-server/config"
	"rental-server/models"
)

// SubmissionService validates add-property forms. Accepted submissions are
// acknowledged only; the catalog is not changed.
type SubmissionService struct {
	region config.RegionConfig
	now    func() time.Time
	newID  func() string
}

func NewSubmissionService(region config.RegionConfig) *SubmissionService {
	return &SubmissionService{region: region, now: time.Now, newID: uuid.NewString}
}

// Submit returns validator.FieldErrors when any field is invalid.
func (ss *SubmissionService) Submit(s models.PropertySubmission) (*models.SubmissionReceipt, error) {
	if errs := s.Validate(ss.region.PropertyTypes, ss.region.Amenities); !errs.Empty() {
		return nil, errs
	}
	receipt := &models.SubmissionReceipt{
		ID:          ss.newID(),
		Name:        s.Name,
		Message:     "Votre propriété a été soumise et sera examinée sous peu.",
		SubmittedAt: ss.now().UTC(),
	}
	log.Printf("[SubmissionService] Accepted submission %s (%s, %s)", receipt.ID, s.Name, s.Location.City)
	return receipt, nil
}
