package formatter

import (
	"fmt"
	"strings"

	"github.com/u0927156/MBTAProject/utils"
)

// BuildText renders a response record for the console.
func (rb *ResponseBuilder) BuildText(res any) (string, error) {
	var b strings.Builder
	switch r := res.(type) {
	case RouteResponse:
		writeRouteText(&b, r)
	case ReportResponse:
		writeReportText(&b, r)
	case LinesResponse:
		for _, l := range r.Lines {
			b.WriteString(l.Name)
			b.WriteString("\n")
		}
	case StopsResponse:
		for _, s := range r.Stops {
			fmt.Fprintf(&b, "%s: %s\n", s.Name, strings.Join(s.Lines, ", "))
		}
	case NearestStopResponse:
		fmt.Fprintf(&b, "%s (%s away), served by %s\n",
			r.Stop.Name, utils.PresentableDistance(r.DistanceKM), strings.Join(r.Stop.Lines, ", "))
	case ErrorResponse:
		fmt.Fprintf(&b, "error: %s\n", r.Error)
	default:
		return "", fmt.Errorf("no text rendering for %T", res)
	}
	return b.String(), nil
}

func writeRouteText(b *strings.Builder, r RouteResponse) {
	if !r.Found {
		fmt.Fprintf(b, "No route from %s to %s\n", r.From, r.To)
		return
	}
	fmt.Fprintf(b, "%s to %s: ", r.From, r.To)
	for i, l := range r.Lines {
		if i > 0 {
			b.WriteString(" -> ")
			if i-1 < len(r.Transfers) && len(r.Transfers[i-1].Stops) > 0 {
				fmt.Fprintf(b, "change at %s -> ", r.Transfers[i-1].Stops[0])
			}
		}
		b.WriteString(l.Name)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "%s\n", utils.Plural(r.TransferCount, "transfer", "transfers"))
}

func writeReportText(b *strings.Builder, r ReportResponse) {
	fmt.Fprintf(b, "%s, %s\n",
		utils.Plural(r.LineCount, "line", "lines"),
		utils.Plural(r.StopCount, "stop", "stops"))
	if r.MostStops != nil {
		fmt.Fprintf(b, "Most stops: %s (%d)\n", r.MostStops.Name, r.MostStops.Stops)
	}
	if r.FewestStops != nil {
		fmt.Fprintf(b, "Fewest stops: %s (%d)\n", r.FewestStops.Name, r.FewestStops.Stops)
	}
	if len(r.Interchanges) > 0 {
		b.WriteString("Stops connecting lines:\n")
		for _, ic := range r.Interchanges {
			fmt.Fprintf(b, "  %s: %s\n", ic.Stop, strings.Join(ic.Lines, ", "))
		}
	}
}
