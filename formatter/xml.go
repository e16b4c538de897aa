package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// BuildXML serializes a response record to XML
func (rb *ResponseBuilder) BuildXML(res any) ([]byte, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	switch r := res.(type) {
	case RouteResponse:
		writeRouteXML(&b, r)
	case *RouteResponse:
		writeRouteXML(&b, *r)
	case ReportResponse:
		writeReportXML(&b, r)
	case *ReportResponse:
		writeReportXML(&b, *r)
	case LinesResponse:
		writeLinesXML(&b, r)
	case StopsResponse:
		writeStopsXML(&b, r)
	case NearestStopResponse:
		writeNearestXML(&b, r)
	case ErrorResponse:
		writeErrorXML(&b, r)
	default:
		return nil, fmt.Errorf("no XML encoding for %T", res)
	}
	return []byte(b.String()), nil
}

func writeRouteXML(b *strings.Builder, r RouteResponse) {
	b.WriteString("<RouteResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	writeElem(b, "From", r.From)
	writeElem(b, "To", r.To)
	writeElem(b, "Found", strconv.FormatBool(r.Found))
	writeElem(b, "State", r.State)
	writeElem(b, "TransferCount", strconv.Itoa(r.TransferCount))
	writeElem(b, "Explored", strconv.Itoa(r.Explored))
	b.WriteString("<Lines>")
	for _, l := range r.Lines {
		writeLineXML(b, l)
	}
	b.WriteString("</Lines>")
	b.WriteString("<Transfers>")
	for _, t := range r.Transfers {
		b.WriteString("<Transfer>")
		writeElem(b, "FromLine", t.From)
		writeElem(b, "ToLine", t.To)
		for _, s := range t.Stops {
			writeElem(b, "StopName", s)
		}
		b.WriteString("</Transfer>")
	}
	b.WriteString("</Transfers>")
	b.WriteString("</RouteResponse>")
}

func writeReportXML(b *strings.Builder, r ReportResponse) {
	b.WriteString("<ReportResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	writeElem(b, "LineCount", strconv.Itoa(r.LineCount))
	writeElem(b, "StopCount", strconv.Itoa(r.StopCount))
	writeLineStatXML(b, "MostStops", r.MostStops)
	writeLineStatXML(b, "FewestStops", r.FewestStops)
	b.WriteString("<Interchanges>")
	for _, ic := range r.Interchanges {
		b.WriteString("<Interchange>")
		writeElem(b, "StopName", ic.Stop)
		for _, l := range ic.Lines {
			writeElem(b, "LineRef", l)
		}
		b.WriteString("</Interchange>")
	}
	b.WriteString("</Interchanges>")
	b.WriteString("</ReportResponse>")
}

func writeLineStatXML(b *strings.Builder, tag string, s *LineStat) {
	if s == nil {
		return
	}
	b.WriteString("<" + tag + ">")
	writeElem(b, "LineRef", s.ID)
	writeElem(b, "Name", s.Name)
	writeElem(b, "StopCount", strconv.Itoa(s.Stops))
	b.WriteString("</" + tag + ">")
}

func writeLinesXML(b *strings.Builder, r LinesResponse) {
	b.WriteString("<LinesResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	b.WriteString("<Lines>")
	for _, l := range r.Lines {
		writeLineXML(b, l)
	}
	b.WriteString("</Lines>")
	b.WriteString("</LinesResponse>")
}

func writeLineXML(b *strings.Builder, l LineRef) {
	b.WriteString("<Line>")
	writeElem(b, "LineRef", l.ID)
	writeElem(b, "Name", l.Name)
	writeElem(b, "Type", strconv.Itoa(l.Type))
	writeElem(b, "StopCount", strconv.Itoa(l.Stops))
	b.WriteString("</Line>")
}

func writeStopsXML(b *strings.Builder, r StopsResponse) {
	b.WriteString("<StopsResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	b.WriteString("<Stops>")
	for _, s := range r.Stops {
		writeStopXML(b, s)
	}
	b.WriteString("</Stops>")
	b.WriteString("</StopsResponse>")
}

func writeNearestXML(b *strings.Builder, r NearestStopResponse) {
	b.WriteString("<NearestStopResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	writeStopXML(b, r.Stop)
	writeElem(b, "DistanceKm", strconv.FormatFloat(r.DistanceKM, 'f', 3, 64))
	b.WriteString("</NearestStopResponse>")
}

func writeStopXML(b *strings.Builder, s StopRef) {
	b.WriteString("<Stop>")
	writeElem(b, "Name", s.Name)
	writeElem(b, "StopRef", s.ID)
	if s.Latitude != 0 || s.Longitude != 0 {
		b.WriteString("<Location>")
		writeElem(b, "Latitude", strconv.FormatFloat(s.Latitude, 'f', -1, 64))
		writeElem(b, "Longitude", strconv.FormatFloat(s.Longitude, 'f', -1, 64))
		b.WriteString("</Location>")
	}
	for _, l := range s.Lines {
		writeElem(b, "LineRef", l)
	}
	b.WriteString("</Stop>")
}

func writeErrorXML(b *strings.Builder, r ErrorResponse) {
	b.WriteString("<ErrorResponse>")
	writeElem(b, "ResponseTimestamp", r.ResponseTimestamp)
	writeElem(b, "Status", strconv.Itoa(r.Status))
	writeElem(b, "Error", r.Error)
	b.WriteString("</ErrorResponse>")
}

// writeElem writes <tag>value</tag>, skipping empty values.
func writeElem(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
