package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/govjobs/internal/models"
	"github.com/jimezsa/govjobs/internal/network"
)

var ErrInvalidDataset = errors.New("invalid dataset structure")

// DefaultAPIURL is the vendor endpoint publishing open positions.
const DefaultAPIURL = "https://merkava.mrp.gov.il/sap/opu/odata/ILG/GIUS_PUBLIC_AREA_SRV/SearchDataIdSet?$filter=isPublis+eq+true"

// Source produces the raw record array.
type Source interface {
	Fetch(ctx context.Context) ([]models.JobRecord, error)
}

type envelope struct {
	D *struct {
		Results *[]models.JobRecord `json:"results"`
	} `json:"d"`
}

// Decode parses a {"d": {"results": [...]}} document.
func Decode(r io.Reader) ([]models.JobRecord, error) {
	var doc envelope
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if doc.D == nil || doc.D.Results == nil {
		return nil, ErrInvalidDataset
	}
	return *doc.D.Results, nil
}

// FileSource reads a dataset document from disk.
type FileSource struct {
	Path string
}

func (f FileSource) Fetch(_ context.Context) ([]models.JobRecord, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

// RemoteSource fetches the dataset from the vendor API.
type RemoteSource struct {
	URL    string
	Client *network.Client
}

var remoteHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "he,en-US;q=0.9,en;q=0.8",
	"Cache-Control":   "no-cache",
	"Pragma":          "no-cache",
	"Referer":         "https://merkava.mrp.gov.il/giusp/index.html",
	"sap-language":    "he",
}

func (r RemoteSource) Fetch(ctx context.Context) ([]models.JobRecord, error) {
	if r.Client == nil {
		return nil, fmt.Errorf("remote source has no client")
	}
	target := r.URL
	if target == "" {
		target = DefaultAPIURL
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range remoteHeaders {
		req.Header.Set(key, value)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", network.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: http %d", network.ErrRequestFailed, resp.StatusCode)
	}
	return Decode(resp.Body)
}
