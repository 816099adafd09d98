package soap

import (
	"strings"
	"testing"
)

type testPropertyTypes struct {
	Types []string `xml:"PropertyType"`
}

type testRequest struct {
	PublicationID int                `xml:"PublicationId"`
	LastModified  *string            `xml:"LastModified,omitempty"`
	Types         *testPropertyTypes `xml:"RequestedPropertyTypes,omitempty"`
}

func TestEncodeOperation(t *testing.T) {
	since := "2024-01-02T00:00:00"

	tests := []struct {
		name    string
		request any
		want    string
	}{
		{
			name:    "nil request encodes an empty element",
			request: nil,
			want:    `<GetContactInfo xmlns="http://weblink.skarabee.com/"></GetContactInfo>`,
		},
		{
			name:    "unset optional fields are omitted",
			request: testRequest{PublicationID: 5},
			want:    `<GetContactInfo xmlns="http://weblink.skarabee.com/"><PublicationId>5</PublicationId></GetContactInfo>`,
		},
		{
			name:    "set optional fields are encoded",
			request: &testRequest{PublicationID: 5, LastModified: &since, Types: &testPropertyTypes{Types: []string{"Transaction", "Project"}}},
			want: `<GetContactInfo xmlns="http://weblink.skarabee.com/"><PublicationId>5</PublicationId>` +
				`<LastModified>2024-01-02T00:00:00</LastModified>` +
				`<RequestedPropertyTypes><PropertyType>Transaction</PropertyType><PropertyType>Project</PropertyType></RequestedPropertyTypes>` +
				`</GetContactInfo>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeOperation("http://weblink.skarabee.com/", "GetContactInfo", tt.request)
			if err != nil {
				t.Fatalf("EncodeOperation failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("EncodeOperation() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestEncodeOperation_EmptyName(t *testing.T) {
	_, err := EncodeOperation("urn:x", "", nil)
	if err == nil || !strings.Contains(err.Error(), "empty operation") {
		t.Errorf("err = %v, want empty operation error", err)
	}
}
