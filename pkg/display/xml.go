package display

import (
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/organize-rs/organize-sub000/pkg/errors"
	"github.com/organize-rs/organize-sub000/pkg/runner"
	"github.com/organize-rs/organize-sub000/pkg/types"
)

// XMLRenderer writes reports as XML documents:
//
//	<report id="..." started="..." finished="..." total="1">
//	  <match rule="large pdfs">
//	    <tag>backup</tag>
//	    <action>move(to=/archive)</action>
//	    <entry type="file" size="2000" modified="...">/tmp/x/a.pdf</entry>
//	  </match>
//	  <skipped rule="old" reason="disabled"/>
//	  <conflict path="/tmp/x/a.pdf"><rule>a</rule><rule>b</rule></conflict>
//	</report>
type XMLRenderer struct {
	output io.Writer
}

// NewXMLRenderer creates an XML renderer
func NewXMLRenderer(output io.Writer) *XMLRenderer {
	return &XMLRenderer{output: output}
}

func (r *XMLRenderer) RenderReport(report runner.Report) error {
	v := NewReportView(report)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("id", v.ID)
	root.CreateAttr("started", v.Started.Format(time.RFC3339))
	root.CreateAttr("finished", v.Finished.Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(v.Total))

	for _, m := range v.Matches {
		me := root.CreateElement("match")
		me.CreateAttr("rule", m.Rule)
		for _, t := range m.Tags {
			me.CreateElement("tag").SetText(t)
		}
		for _, a := range m.Actions {
			me.CreateElement("action").SetText(a)
		}
		for _, e := range m.Entries {
			entryElement(me, e)
		}
	}

	for _, s := range v.Skipped {
		se := root.CreateElement("skipped")
		se.CreateAttr("rule", s.Rule)
		se.CreateAttr("reason", s.Reason)
	}

	for _, c := range v.Conflicts {
		ce := root.CreateElement("conflict")
		ce.CreateAttr("path", c.Path)
		for _, name := range c.Rules {
			ce.CreateElement("rule").SetText(name)
		}
	}

	return r.write(doc)
}

func entryElement(parent *etree.Element, e types.Entry) {
	ee := parent.CreateElement("entry")
	ee.CreateAttr("type", e.Type.String())
	if !e.IsDir() {
		ee.CreateAttr("size", strconv.FormatInt(e.Size, 10))
	}
	for name, ts := range map[string]time.Time{"created": e.Created, "modified": e.Modified, "accessed": e.Accessed} {
		if !ts.IsZero() {
			ee.CreateAttr(name, ts.Format(time.RFC3339))
		}
	}
	ee.SortAttrs()
	ee.SetText(e.Path)
}

func (r *XMLRenderer) RenderError(err error) error {
	doc := etree.NewDocument()
	ee := doc.CreateElement("error")
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		ee.CreateAttr("code", string(code))
	}
	ee.SetText(err.Error())
	return r.write(doc)
}

func (r *XMLRenderer) RenderMessage(msg string) error {
	doc := etree.NewDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}

func (r *XMLRenderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}
