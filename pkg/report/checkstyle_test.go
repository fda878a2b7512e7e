package report_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varia-dev/varia/pkg/errors"
	"github.com/varia-dev/varia/pkg/report"
	"github.com/varia-dev/varia/pkg/variants"
)

func sampleReport() report.Report {
	return report.Report{
		Path: "varia.toml",
		Entries: []report.Entry{
			{
				Component: "button",
				Issues: []variants.Issue{
					{
						Severity: variants.SeverityError,
						Code:     errors.ErrAxisInvalid,
						Key:      "broken",
						Message:  "axis definition must be a string or an option map; it will be skipped",
					},
					{
						Severity: variants.SeverityWarning,
						Code:     errors.ErrCompoundNoClasses,
						Key:      "compound[0]",
						Message:  "rule has no classes fragment; matching it contributes nothing",
					},
				},
			},
			{Component: "card"},
		},
	}
}

func TestReport_Counts(t *testing.T) {
	errs, warnings, infos := sampleReport().Counts()

	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 0, infos)
	assert.True(t, sampleReport().HasErrors())
}

func TestWriteCheckstyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCheckstyle(&buf, sampleReport()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("checkstyle")
	require.NotNil(t, root)
	assert.Equal(t, "4.3", root.SelectAttrValue("version", ""))

	file := root.SelectElement("file")
	require.NotNil(t, file)
	assert.Equal(t, "varia.toml", file.SelectAttrValue("name", ""))

	findings := file.SelectElements("error")
	require.Len(t, findings, 2)

	first := findings[0]
	assert.Equal(t, "error", first.SelectAttrValue("severity", ""))
	assert.Equal(t, "varia.AXIS_INVALID", first.SelectAttrValue("source", ""))
	assert.Contains(t, first.SelectAttrValue("message", ""), "button.broken:")

	second := findings[1]
	assert.Equal(t, "warning", second.SelectAttrValue("severity", ""))
}

func TestWriteCheckstyle_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCheckstyle(&buf, report.Report{Path: "varia.toml"}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	require.NotNil(t, doc.SelectElement("checkstyle"))
}
