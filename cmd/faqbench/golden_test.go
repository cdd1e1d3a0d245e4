package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattbriggs/faqbench/internal/faq"
)

const goldenTestJSONLD = `{
	"@context": "https://schema.org",
	"@type": "FAQPage",
	"mainEntity": [
		{
			"@type": "Question",
			"name": "What is the return policy?",
			"acceptedAnswer": {"@type": "Answer", "text": "<p>Returns are accepted within 30 days.</p>"}
		}
	]
}`

const goldenTestHTML = `<html><body>
<section id="faq-content-container">
	<h3>Do you ship internationally?</h3>
	<div class="content"><p>Yes, to over 40 countries.</p></div>
</section>
</body></html>`

func TestGoldenCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "golden")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestGoldenCommand_BuildsGoldenSet(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	jsonldDir := filepath.Join(dir, "JSONLD")
	htmlDir := filepath.Join(dir, "HTML")
	require.NoError(t, os.MkdirAll(jsonldDir, 0755))
	require.NoError(t, os.MkdirAll(htmlDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(jsonldDir, "shop.json"), []byte(goldenTestJSONLD), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(htmlDir, "shop.html"), []byte(goldenTestHTML), 0644))

	outFile := filepath.Join(dir, "golden_questions.json")
	cmd := exec.Command(binaryPath, "golden", "--jsonld", jsonldDir, "--html", htmlDir, "--out", outFile)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	golden, err := faq.LoadGoldenSet(outFile)
	require.NoError(t, err)
	require.Len(t, golden, 2)
	assert.Equal(t, "What is the return policy?", golden[0].Question)
	assert.Equal(t, "Returns are accepted within 30 days.", golden[0].ExpectedAnswer)
	assert.Equal(t, "Do you ship internationally?", golden[1].Question)
}
