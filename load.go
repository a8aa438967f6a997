package plot

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a CSV data frame from source which may be a file name,
// "-" for standard input or an http(s) URL. The first record is the
// header. Exactly one attempt is made; every failure is a *LoadError.
func Load(ctx context.Context, source string) (*DataFrame, error) {
	switch {
	case source == "-":
		return ReadCSV("stdin", os.Stdin)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return loadURL(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer f.Close()
	df, err := ReadCSV(strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)), f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = source
		}
		return nil, err
	}
	return df, nil
}

func loadURL(ctx context.Context, url string) (*DataFrame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &LoadError{Source: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: url, Err: fmt.Errorf("http status %s", resp.Status)}
	}
	name := url[strings.LastIndex(url, "/")+1:]
	name = strings.TrimSuffix(name, filepath.Ext(name))
	df, err := ReadCSV(name, resp.Body)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = url
		}
		return nil, err
	}
	return df, nil
}

// ReadCSV parses a comma separated stream into a data frame called name.
// Records with a different number of fields than the header are an error.
func ReadCSV(name string, r io.Reader) (*DataFrame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // all records like the first one
	records, err := cr.ReadAll()
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Source: name, Err: errors.New("no header")}
	}

	header := records[0]
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		header[i] = strings.TrimSpace(h)
	}
	df, err := NewDataFrame(name, header, records[1:])
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return df, nil
}
