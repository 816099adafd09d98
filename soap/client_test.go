package soap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smnsjas/go-weblink/soap/transport"
)

const testNamespace = "http://weblink.skarabee.com/"

type getPublicationRequest struct {
	PublicationID int `xml:"PublicationId"`
}

// TestClient_Call verifies the request envelope and the decoded response.
func TestClient_Call(t *testing.T) {
	var receivedBody, receivedAction, receivedContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		receivedAction = r.Header.Get("SOAPAction")
		receivedContentType = r.Header.Get("Content-Type")

		response := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetPublicationResponse xmlns="http://weblink.skarabee.com/">
      <GetPublicationResult>
        <Publication><ID>2247560</ID><City>Gent</City></Publication>
      </GetPublicationResult>
    </GetPublicationResponse>
  </soap:Body>
</soap:Envelope>`
		w.Header().Set("Content-Type", ContentTypeSOAP11)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(response))
	}))
	defer server.Close()

	client := NewClient(server.URL, testNamespace, transport.NewHTTPTransport())

	result, err := client.Call(context.Background(), "GetPublication", getPublicationRequest{PublicationID: 2247560})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	if receivedAction != `"http://weblink.skarabee.com/GetPublication"` {
		t.Errorf("SOAPAction = %q", receivedAction)
	}
	if receivedContentType != ContentTypeSOAP11 {
		t.Errorf("Content-Type = %q", receivedContentType)
	}
	if !strings.Contains(receivedBody, `<GetPublication xmlns="http://weblink.skarabee.com/"><PublicationId>2247560</PublicationId></GetPublication>`) {
		t.Errorf("unexpected request body: %s", receivedBody)
	}

	res, ok := result["GetPublicationResult"].(map[string]any)
	if !ok {
		t.Fatalf("GetPublicationResult missing: %#v", result)
	}
	pub, ok := res["Publication"].(map[string]any)
	if !ok {
		t.Fatalf("Publication missing: %#v", res)
	}
	if pub["ID"] != "2247560" || pub["City"] != "Gent" {
		t.Errorf("Publication = %#v", pub)
	}
}

// TestClient_Call_FaultOnHTTP500 verifies faults sent with HTTP 500 surface as *Fault.
func TestClient_Call_FaultOnHTTP500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>Publication not found</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(response))
	}))
	defer server.Close()

	client := NewClient(server.URL, testNamespace, transport.NewHTTPTransport())

	_, err := client.Call(context.Background(), "GetPublication", getPublicationRequest{PublicationID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsFault(err) {
		t.Fatalf("expected *Fault, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Publication not found") {
		t.Errorf("error = %v", err)
	}
}

// TestClient_Call_HTTPError verifies non-fault HTTP errors are passed through.
func TestClient_Call_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client := NewClient(server.URL, testNamespace, transport.NewHTTPTransport())

	_, err := client.Call(context.Background(), "GetContactInfo", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if IsFault(err) {
		t.Errorf("did not expect a fault: %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("error = %v, want HTTP 502", err)
	}
}

// TestClient_Call_SOAP12 verifies the action moves into the content type.
func TestClient_Call_SOAP12(t *testing.T) {
	var receivedAction, receivedContentType, receivedBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		receivedAction = r.Header.Get("SOAPAction")
		receivedContentType = r.Header.Get("Content-Type")

		_, _ = w.Write([]byte(`<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope"><s:Body><GetContactInfoResponse xmlns="http://weblink.skarabee.com/"/></s:Body></s:Envelope>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testNamespace, transport.NewHTTPTransport(), WithVersion(Version12))

	result, err := client.Call(context.Background(), "GetContactInfo", nil)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("result = %#v, want empty map", result)
	}
	if receivedAction != "" {
		t.Errorf("SOAPAction = %q, want empty for SOAP 1.2", receivedAction)
	}
	if !strings.Contains(receivedContentType, `action="http://weblink.skarabee.com/GetContactInfo"`) {
		t.Errorf("Content-Type = %q", receivedContentType)
	}
	if !strings.Contains(receivedBody, NsSoap12) {
		t.Errorf("request not a SOAP 1.2 envelope: %s", receivedBody)
	}
}

// TestClient_Call_ContextCanceled verifies cancellation aborts the call.
func TestClient_Call_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, testNamespace, transport.NewHTTPTransport())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Call(ctx, "GetContactInfo", nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
