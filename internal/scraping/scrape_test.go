package scraping

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattbriggs/faqbench/internal/fetch"
)

const faqPage = `
<html>
<head>
	<script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@type": "FAQPage",
		"mainEntity": [
			{"@type": "Question", "name": "What is AI?", "acceptedAnswer": {"text": "AI is artificial intelligence."}}
		]
	}
	</script>
</head>
<body>
	<section id="faq-content-container">
		<h3>What is AI?</h3>
		<div class="content"><p>AI is artificial intelligence.</p></div>
	</section>
</body>
</html>
`

const plainPage = `
<html>
<head>
	<script type="application/ld+json">{"@type": "Organization", "name": "Example Corp"}</script>
</head>
<body><p>No FAQ here.</p></body>
</html>
`

func TestLoadURLs_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://a.example/faq\n\n  \nhttps://b.example/faq\n"), 0644))

	urls, err := LoadURLs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/faq", "https://b.example/faq"}, urls)
}

func TestLoadURLs_MissingFile(t *testing.T) {
	_, err := LoadURLs(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestRun_DetectsAndSavesFAQPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/faq", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(faqPage))
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(plainPage))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	outDir := t.TempDir()
	urls := []string{server.URL + "/faq", server.URL + "/about"}

	results, err := Run(context.Background(), urls, outDir, fetch.Direct(nil), Options{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// input order is preserved
	assert.Equal(t, urls[0], results[0].URL)
	assert.True(t, results[0].FAQ)
	assert.Equal(t, "200", results[0].StatusCode)
	assert.Equal(t, urls[1], results[1].URL)
	assert.False(t, results[1].FAQ)

	name, err := FileName(urls[0])
	require.NoError(t, err)

	fragment, err := os.ReadFile(filepath.Join(outDir, "HTML", name+".html"))
	require.NoError(t, err)
	assert.Contains(t, string(fragment), "What is AI?")

	jsonldData, err := os.ReadFile(filepath.Join(outDir, "JSONLD", name+".json"))
	require.NoError(t, err)
	var payloads []any
	require.NoError(t, json.Unmarshal(jsonldData, &payloads))
	require.Len(t, payloads, 1)

	// nothing saved for the non-FAQ page
	aboutName, err := FileName(urls[1])
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(outDir, "JSONLD", aboutName+".json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_RequestFailureRecordsErrorRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(faqPage))
	}))
	defer server.Close()

	urls := []string{
		"http://127.0.0.1:1/unreachable",
		server.URL + "/missing",
		server.URL + "/faq",
	}

	results, err := Run(context.Background(), urls, t.TempDir(), fetch.Direct(nil), Options{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Error", results[0].StatusCode)
	assert.False(t, results[0].FAQ)
	assert.Equal(t, "404", results[1].StatusCode)
	assert.True(t, results[2].FAQ)
}

func TestRun_EmptyURLList(t *testing.T) {
	_, err := Run(context.Background(), nil, t.TempDir(), fetch.Direct(nil), Options{})
	require.Error(t, err)
}

func TestDetectFAQPage(t *testing.T) {
	faq := map[string]any{"@type": "FAQPage"}
	org := map[string]any{"@type": "Organization"}

	assert.True(t, detectFAQPage([]any{org, faq}))
	assert.True(t, detectFAQPage([]any{[]any{org, faq}}))
	assert.False(t, detectFAQPage([]any{org}))
	assert.False(t, detectFAQPage(nil))
}

func TestFileName(t *testing.T) {
	name, err := FileName("https://www.example.com/help/faq/")
	require.NoError(t, err)
	assert.Equal(t, "www_example_com_help_faq", name)

	name, err = FileName("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "example_com", name)

	_, err = FileName("not a url")
	require.Error(t, err)
}

func TestWriteReport_ColumnsAndRows(t *testing.T) {
	outDir := t.TempDir()
	results := []PageResult{
		{Date: "3/1/2026", URL: "https://a.example/faq", StatusCode: "200", FAQ: true},
		{Date: "3/1/2026", URL: "https://b.example", StatusCode: "Error", FAQ: false},
	}

	path, err := WriteReport(outDir, results)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, ReportFileName(time.Now())), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "URL", "Response-Code", "FAQ"}, rows[0])
	assert.Equal(t, []string{"3/1/2026", "https://a.example/faq", "200", "Yes"}, rows[1])
	assert.Equal(t, []string{"3/1/2026", "https://b.example", "Error", "No"}, rows[2])
}
