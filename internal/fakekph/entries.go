package fakekph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-kph-client/models"
)

// fileEntry is one element of an entries file:
//
//	[{"url": "https://example.com", "name": "example", "login": "alice", "password": "p@ss"}]
//
// A missing uuid is generated.
type fileEntry struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	UUID     string `json:"uuid"`
}

// LoadEntries reads an entries file and registers its contents with s.
func (s *Service) LoadEntries(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read entries file: %w", err)
	}

	var entries []fileEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse entries file: %w", err)
	}

	for i, e := range entries {
		if e.URL == "" {
			return 0, fmt.Errorf("entry %d: url is required", i)
		}
		if e.UUID == "" {
			e.UUID = s.ids.Generate()
		}
		s.AddEntries(e.URL, models.Entry{Login: e.Login, Name: e.Name, Password: e.Password, UUID: e.UUID})
	}
	return len(entries), nil
}
