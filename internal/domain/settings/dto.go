package settings

import "github.com/calldesk/callcenter-backend-go/internal/pkg/validator"

type UpdateProjectTypesRequest struct {
	Types []string `json:"types"`
}

func (r *UpdateProjectTypesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Types) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "types",
			Message: "at least one project type is required",
		})
	}
	for _, t := range r.Types {
		if validator.IsEmpty(t) {
			errs = append(errs, validator.ValidationError{
				Field:   "types",
				Message: "project types must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectTypesResponse struct {
	Types []string `json:"types"`
}
