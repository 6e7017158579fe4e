package adapters

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rpm-solv/internal/types"
)

// HTTPMetadataFetcherAdapter implements ports.MetadataFetcherPort against a
// real YUM/DNF repository: fetch repodata/repomd.xml, find the entry with
// type=="primary", fetch its location/@href relative to baseURL, and
// gunzip the result if compressed. The retry/timeout/gzip-sniffing shape
// is carried over from fetchURL/isGzipContent/doRequest in
// internal/adapters/repo_index_builder.go.
type HTTPMetadataFetcherAdapter struct {
	Timeout time.Duration
	Retries int
}

// NewHTTPMetadataFetcherAdapter builds an adapter with sane defaults:
// one retry-free request at a 30s timeout. Callers that need resilience
// against a flaky mirror can set Retries directly on the returned value.
func NewHTTPMetadataFetcherAdapter() HTTPMetadataFetcherAdapter {
	return HTTPMetadataFetcherAdapter{Timeout: 30 * time.Second, Retries: 1}
}

type repomd struct {
	Data []repomdData `xml:"data"`
}

type repomdData struct {
	Type     string        `xml:"type,attr"`
	Location repomdLocHref `xml:"location"`
}

type repomdLocHref struct {
	Href string `xml:"href,attr"`
}

// Fetch retrieves and decompresses the primary.xml document for the
// repository rooted at baseURL.
func (a HTTPMetadataFetcherAdapter) Fetch(ctx context.Context, baseURL string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixInvalidConfig + ": base URL is empty")
	}

	repomdBody, _, err := a.get(ctx, base+"/repodata/repomd.xml")
	if err != nil {
		return "", err
	}

	var doc repomd
	if err := xml.Unmarshal(repomdBody, &doc); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixMalformedXML + ": repomd.xml").
			WithCause(err)
	}

	href := ""
	for _, entry := range doc.Data {
		if entry.Type == "primary" {
			href = strings.TrimSpace(entry.Location.Href)
			break
		}
	}
	if href == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(types.ErrPrefixNotFound + ": repomd.xml has no primary data entry")
	}

	primaryBody, header, err := a.get(ctx, base+"/"+strings.TrimLeft(href, "/"))
	if err != nil {
		return "", err
	}

	if isGzip(href, primaryBody, header) {
		reader, err := gzip.NewReader(bytes.NewReader(primaryBody))
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixIoError + ": failed to open gzip primary.xml").
				WithCause(err)
		}
		defer reader.Close()
		decompressed, err := io.ReadAll(reader)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixIoError + ": failed to read gzip primary.xml").
				WithCause(err)
		}
		return string(decompressed), nil
	}
	return string(primaryBody), nil
}

func (a HTTPMetadataFetcherAdapter) get(ctx context.Context, url string) ([]byte, http.Header, error) {
	client := &http.Client{Timeout: a.Timeout}
	retries := a.Retries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if ctx.Err() != nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixFetchError + ": request canceled").
				WithCause(ctx.Err())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixFetchError + ": failed to create request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			if attempt < retries-1 {
				time.Sleep(httpRetryDelay(attempt))
				continue
			}
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixFetchError + ": request failed").
				WithCause(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			lastErr = errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(types.ErrPrefixFetchError + ": unexpected status " + resp.Status)
			if attempt < retries-1 {
				time.Sleep(httpRetryDelay(attempt))
				continue
			}
			return nil, nil, lastErr
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(types.ErrPrefixIoError + ": failed to read response body").
				WithCause(err)
		}
		return body, resp.Header, nil
	}
	return nil, nil, lastErr
}

func httpRetryDelay(attempt int) time.Duration {
	return time.Duration(attempt+1) * 200 * time.Millisecond
}

func isGzip(url string, data []byte, header http.Header) bool {
	if strings.HasSuffix(url, ".gz") {
		return true
	}
	if header != nil && strings.EqualFold(header.Get("Content-Encoding"), "gzip") {
		return true
	}
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}
