package client

// Remote operation names.
const (
	OpGetPublication          = "GetPublication"
	OpGetPublicationSummaries = "GetPublicationSummaries"
	OpGetProjectSummaries     = "GetProjectSummaries"
	OpGetContactInfo          = "GetContactInfo"
	OpInsertContactMes        = "InsertContactMes"
	OpFeedback                = "Feedback"
)

// resultFields maps each operation to the response field holding its payload.
var resultFields = map[string]string{
	OpGetPublication:          "GetPublicationResult",
	OpGetPublicationSummaries: "GetPublicationSummariesResult",
	OpGetProjectSummaries:     "GetProjectSummariesResult",
	OpGetContactInfo:          "GetContactInfoResult",
	OpInsertContactMes:        "InsertContactMesResult",
	OpFeedback:                "FeedbackResult",
}

func resultField(operation string) string {
	if f, ok := resultFields[operation]; ok {
		return f
	}
	return operation + "Result"
}

type getPublicationRequest struct {
	PublicationID int `xml:"PublicationId"`
}

type propertyTypes struct {
	Types []string `xml:"PropertyType"`
}

// summariesRequest is shared by GetPublicationSummaries and GetProjectSummaries.
// Nil fields are left out of the request entirely.
type summariesRequest struct {
	LastModified           *string        `xml:"LastModified,omitempty"`
	RequestedPropertyTypes *propertyTypes `xml:"RequestedPropertyTypes,omitempty"`
}

type insertContactMesRequest struct {
	ContactMes contactMes `xml:"ContactMes"`
}

// contactMes is the ContactMes element. Field order is the wire order.
type contactMes struct {
	PublicationID        int    `xml:"PublicationID,omitempty"`
	ExternalReference    string `xml:"ExternalReference,omitempty"`
	FirstName            string `xml:"FirstName"`
	LastName             string `xml:"LastName"`
	CellPhone            string `xml:"CellPhone,omitempty"`
	Phone                string `xml:"Phone,omitempty"`
	Email                string `xml:"Email,omitempty"`
	Comments             string `xml:"Comments"`
	Street               string `xml:"Street,omitempty"`
	HouseNumber          string `xml:"HouseNumber"`
	HouseNumberExtension string `xml:"HouseNumberExtension,omitempty"`
	ZipCode              string `xml:"ZipCode,omitempty"`
	City                 string `xml:"City,omitempty"`
}

type feedbackRequest struct {
	FeedbackList feedbackListWrapper `xml:"FeedbackList"`
}

type feedbackListWrapper struct {
	FeedbackList feedbackList `xml:"FeedbackList"`
}

type feedbackList struct {
	Feedback feedback `xml:"Feedback"`
}

type feedback struct {
	PublicationID     int    `xml:"PublicationID"`
	Status            string `xml:"Status"`
	StatusDescription string `xml:"StatusDescription"`
	ExternalID        int    `xml:"ExternalID"`
	URL               string `xml:"URL"`
}
