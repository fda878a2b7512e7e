// Package report aggregates validation findings across a component library
// and serializes them for CI consumption.
package report

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/varia-dev/varia/pkg/errors"
	"github.com/varia-dev/varia/pkg/variants"
)

// Entry holds the findings for one component
type Entry struct {
	Component string
	Issues    []variants.Issue
}

// Report is a lint run over one library file
type Report struct {
	// Path is the library file the findings concern
	Path    string
	Entries []Entry
}

// Counts returns the number of findings per severity
func (r Report) Counts() (errs, warnings, infos int) {
	for _, entry := range r.Entries {
		for _, issue := range entry.Issues {
			switch issue.Severity {
			case variants.SeverityError:
				errs++
			case variants.SeverityWarning:
				warnings++
			default:
				infos++
			}
		}
	}
	return errs, warnings, infos
}

// HasErrors reports whether any finding is an error
func (r Report) HasErrors() bool {
	errs, _, _ := r.Counts()
	return errs > 0
}

// WriteCheckstyle serializes the report as checkstyle XML. Checkstyle has no
// notion of components, so each finding's message is prefixed with the
// component and declaration key it concerns.
func WriteCheckstyle(w io.Writer, r Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", "4.3")

	file := root.CreateElement("file")
	file.CreateAttr("name", r.Path)

	for _, entry := range r.Entries {
		for _, issue := range entry.Issues {
			el := file.CreateElement("error")
			el.CreateAttr("line", "0")
			el.CreateAttr("column", "0")
			el.CreateAttr("severity", issue.Severity.String())

			location := entry.Component
			if issue.Key != "" {
				location = fmt.Sprintf("%s.%s", entry.Component, issue.Key)
			}
			el.CreateAttr("message", fmt.Sprintf("%s: %s", location, issue.Message))
			el.CreateAttr("source", "varia."+string(issue.Code))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrReportEncode, "failed to write checkstyle report")
	}
	return nil
}
