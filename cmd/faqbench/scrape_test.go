package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scrapeTestPage = `<html><head>
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "FAQPage", "mainEntity": [
	{"@type": "Question", "name": "What is the return policy?",
	 "acceptedAnswer": {"@type": "Answer", "text": "30 days."}}
]}
</script>
</head><body>
<section id="faq-content-container">
	<h3>What is the return policy?</h3>
	<div class="content"><p>30 days.</p></div>
</section>
</body></html>`

func TestScrapeCommand_MissingURLsFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "scrape")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScrapeCommand_EmptyURLFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	urlFile := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(urlFile, []byte("\n"), 0644))

	cmd := exec.Command(binaryPath, "scrape", "--urls", urlFile, "--out", dir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no URLs")
}

func TestScrapeCommand_SavesDetectedPages(t *testing.T) {
	binaryPath := getBinaryPath(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scrapeTestPage))
	}))
	defer server.Close()

	dir := t.TempDir()
	urlFile := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(urlFile, []byte(server.URL+"/faq\n"), 0644))

	outDir := filepath.Join(dir, "data")
	cmd := exec.Command(binaryPath, "scrape", "--urls", urlFile, "--out", outDir)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "FAQ content detected on 1 of 1 pages")

	htmlFiles, err := os.ReadDir(filepath.Join(outDir, "HTML"))
	require.NoError(t, err)
	assert.Len(t, htmlFiles, 1)

	jsonldFiles, err := os.ReadDir(filepath.Join(outDir, "JSONLD"))
	require.NoError(t, err)
	assert.Len(t, jsonldFiles, 1)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	foundReport := false
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "report-") && strings.HasSuffix(entry.Name(), ".csv") {
			foundReport = true
		}
	}
	assert.True(t, foundReport, "expected a report-*.csv in %s", outDir)
}
