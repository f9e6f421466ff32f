package views

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"fmt"
)

func errUnknownPage(page string) error {
	return exceptions.BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("unknown page template %s", page))
}
