package client

import (
	"fmt"
	"strings"
)

// ContactMessage is a lead submitted through the website.
//
// Comments, FirstName and LastName are required, plus at least one of Phone,
// CellPhone or Email. Zero-valued fields count as not supplied.
type ContactMessage struct {
	PublicationID        int
	ExternalReference    string
	FirstName            string
	LastName             string
	Phone                string
	CellPhone            string
	Email                string
	Comments             string
	Street               string
	HouseNumber          string
	HouseNumberExtension string
	Zip                  string
	City                 string
}

// requirement is either a single required field or a group of which at
// least one must be set.
type requirement []string

var contactRequirements = []requirement{
	{"comments"},
	{"first_name"},
	{"last_name"},
	{"phone", "cell_phone", "email"},
}

// fields returns the validated fields keyed by their field name.
func (m ContactMessage) fields() map[string]string {
	return map[string]string{
		"comments":   m.Comments,
		"first_name": m.FirstName,
		"last_name":  m.LastName,
		"phone":      m.Phone,
		"cell_phone": m.CellPhone,
		"email":      m.Email,
	}
}

// Validate reports the first unmet requirement as a *ValidationError.
func (m ContactMessage) Validate() error {
	values := m.fields()
	for _, req := range contactRequirements {
		satisfied := false
		for _, name := range req {
			if strings.TrimSpace(values[name]) != "" {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}

		if len(req) == 1 {
			return &ValidationError{
				Fields:  []string{req[0]},
				Message: fmt.Sprintf("required field %q is missing", req[0]),
			}
		}
		return &ValidationError{
			Fields:  append([]string(nil), req...),
			Message: fmt.Sprintf("required field one of %q is missing", strings.Join(req, ", ")),
		}
	}
	return nil
}

func (m ContactMessage) request() insertContactMesRequest {
	return insertContactMesRequest{
		ContactMes: contactMes{
			PublicationID:        m.PublicationID,
			ExternalReference:    m.ExternalReference,
			FirstName:            m.FirstName,
			LastName:             m.LastName,
			CellPhone:            m.CellPhone,
			Phone:                m.Phone,
			Email:                m.Email,
			Comments:             m.Comments,
			Street:               m.Street,
			HouseNumber:          m.HouseNumber,
			HouseNumberExtension: m.HouseNumberExtension,
			ZipCode:              m.Zip,
			City:                 m.City,
		},
	}
}
