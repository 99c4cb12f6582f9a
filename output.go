package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona-lab/l99/errors"
	"github.com/percona-lab/l99/l99"
	"github.com/percona-lab/l99/laws"
	"github.com/percona-lab/l99/list"
)

// Output formats.
const (
	outputText    = "text"
	outputJSON    = "json"
	outputExtJSON = "extjson"
)

var errUnknownOutput = errors.New("unknown output format")

func checkOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputExtJSON:
		return nil
	}

	return errors.Wrap(errUnknownOutput, format)
}

// printer renders command results in the selected format.
type printer struct {
	w      io.Writer
	format string
}

// Each prints the list elements one per line.
func (p *printer) Each(l list.List[int]) error {
	for v := range l.All() {
		err := p.value("value", v)
		if err != nil {
			return err
		}
	}

	return nil
}

// Option prints the element or its absence.
func (p *printer) Option(rv l99.Option[int]) error {
	if !rv.Ok {
		if p.format == outputText {
			return p.println("none")
		}

		return p.value("value", nil)
	}

	return p.value("value", rv.Value)
}

func (p *printer) Length(n uint) error {
	return p.value("length", n)
}

func (p *printer) List(l list.List[int]) error {
	return p.value("list", l)
}

func (p *printer) Report(rep laws.Report) error {
	if p.format == outputText {
		return p.println(fmt.Sprintf("ok: %s checks over %s lists",
			humanize.Comma(rep.Checks), humanize.Comma(int64(rep.Lists))))
	}

	return p.value("report", rep)
}

// value prints v alone in text and json formats. Extended JSON requires a
// document, so v is wrapped in one under key.
func (p *printer) value(key string, v any) error {
	switch p.format {
	case outputJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshal json")
		}

		return p.println(string(data))

	case outputExtJSON:
		data, err := bson.MarshalExtJSON(bson.D{{Key: key, Value: v}}, true, false)
		if err != nil {
			return errors.Wrap(err, "marshal extjson")
		}

		return p.println(string(data))
	}

	return p.println(fmt.Sprint(v))
}

func (p *printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)

	return errors.Wrap(err, "write")
}
