package checkout

import (
	"fmt"
	"time"

	"lablink/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidatePatientDetails checks the step-one payload against its schema.
func ValidatePatientDetails(details models.PatientDetails) error {
	if err := validate.Struct(details); err != nil {
		return NewValidationError(firstViolation(err))
	}
	return nil
}

// ValidateCollectionDetails checks the step-two payload. Beyond the struct tags it
// enforces the conditional rule: home collection requires address, city and pincode,
// and the collection date must be in the future relative to now.
func ValidateCollectionDetails(details models.CollectionDetails, now time.Time) error {
	if err := validate.Struct(details); err != nil {
		return NewValidationError(firstViolation(err))
	}

	date, err := time.Parse("2006-01-02", details.Date)
	if err != nil {
		return NewValidationError("date must be in YYYY-MM-DD form")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !date.After(today) {
		return NewValidationError("collection date must be a future date")
	}

	if details.Type == models.CollectionHome {
		if details.Address == "" || details.City == "" || details.Pincode == "" {
			return NewValidationError("address, city and pincode are required for home collection")
		}
	}
	return nil
}

// validateStep checks the sub-object owned by the given wizard step. Step gating for
// forward navigation and the pre-commit completeness check both route through here.
func validateStep(draft *models.BookingDraft, step int) error {
	switch step {
	case models.StepPatientDetails:
		if draft.Patient == nil {
			return NewStepError("patient details not provided")
		}
		return ValidatePatientDetails(*draft.Patient)
	case models.StepCollectionDetails:
		if draft.Collection == nil {
			return NewStepError("collection details not provided")
		}
		return ValidateCollectionDetails(*draft.Collection, time.Now())
	case models.StepReview:
		if draft.PaymentMethod == "" {
			return NewStepError("payment method not selected")
		}
		return nil
	default:
		return NewStepError(fmt.Sprintf("unknown step %d", step))
	}
}

func firstViolation(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return fmt.Sprintf("field %s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
	return err.Error()
}
