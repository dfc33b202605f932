package fakekph

import "github.com/MKhiriev/go-kph-client/models"

// request is the union of every request shape the service accepts. Fields
// not used by RequestType are ignored.
type request struct {
	RequestType models.RequestType `json:"RequestType"`
	ID          string             `json:"Id"`
	Key         string             `json:"Key"`
	Nonce       string             `json:"Nonce"`
	Verifier    string             `json:"Verifier"`
	URL         string             `json:"Url"`
}
