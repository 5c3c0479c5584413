// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cristin queries the CRISTIN registry of Norwegian scientific
// publications. Person lookup uses the new REST API; publication retrieval
// still goes through the old WS API, the only endpoint that serves full
// nested records.
//
// New API docs: https://api.cristin.no/index.html
// Old API docs: http://www.cristin.no/cristin/superbrukeropplaering/ws-dokumentasjon.html
package cristin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/Roberthaf/Pub-Grab/internal/httputil"
	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

// Base URLs for the registry endpoints. Declared as vars so tests can
// substitute httptest servers.
var (
	personsAPIBase = "https://api.cristin.no/v1/persons"
	worksAPIBase   = "http://www.cristin.no/ws/hentVarbeiderPerson"
)

// CategoryJournal is the registry code for journal publications, the only
// category this tool renders.
const CategoryJournal = "TIDSSKRIFTPUBL"

// Client queries the CRISTIN registry. It implements bib.Source.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxRetries bounds retry attempts on rate-limited requests (0 means
	// the httputil default).
	MaxRetries int
}

// New returns a Client built from registry configuration.
func New(cfg types.RegistryConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

type cristinPerson struct {
	CristinPersonID int `json:"cristin_person_id"`
}

// PersonID resolves an author identifier to a CRISTIN person ID. A
// numeric identifier is its own person ID and short-circuits the lookup.
// Otherwise the persons API is queried by name and the first match wins.
// found is false when the registry knows no such person; that is not an
// error.
func (c *Client) PersonID(ctx context.Context, identifier string) (int, bool, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		return id, true, nil
	}

	reqURL := personsAPIBase + "?" + url.Values{"name": {identifier}}.Encode()
	log.WithField("url", reqURL).Debug("person lookup")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.MaxRetries)
	if err != nil {
		return 0, false, fmt.Errorf("persons API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("persons API returned HTTP %d", resp.StatusCode)
	}

	var persons []cristinPerson
	if err := json.NewDecoder(resp.Body).Decode(&persons); err != nil {
		return 0, false, fmt.Errorf("parsing persons response: %w", err)
	}
	if len(persons) == 0 {
		return 0, false, nil
	}
	return persons[0].CristinPersonID, true, nil
}

type worksResponse struct {
	Results []map[string]any `json:"forskningsresultat"`
}

// PublicationsBy returns the raw publication records for a person within
// the inclusive year range, in the registry's nested shape. HTTP 404
// means the person has no publications (or is unknown to the old API)
// and yields an empty slice, not an error.
func (c *Client) PublicationsBy(ctx context.Context, personID, fromYear, toYear int, category string) ([]map[string]any, error) {
	params := url.Values{
		"lopenr":        {strconv.Itoa(personID)},
		"fra":           {strconv.Itoa(fromYear)},
		"til":           {strconv.Itoa(toYear)},
		"hovedkategori": {category},
		"format":        {"json"},
	}
	reqURL := worksAPIBase + "?" + params.Encode()
	log.WithField("url", reqURL).Debug("fetching publications")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("works API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("works API returned HTTP %d", resp.StatusCode)
	}

	var wr worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing works response: %w", err)
	}
	log.WithFields(log.Fields{"person": personID, "records": len(wr.Results)}).Debug("fetched publications")
	return wr.Results, nil
}
