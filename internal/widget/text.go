package widget

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderText draws the state for a terminal.
func RenderText(w io.Writer, s State) error {
	switch s.Status {
	case StatusIdle:
		if s.Input != "" {
			_, err := fmt.Fprintf(w, "Last search: %s\n", s.Input)
			return err
		}
		return nil
	case StatusLoading:
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	case StatusErrorShown:
		_, err := fmt.Fprintf(w, "Error: %s\n", s.Error)
		return err
	}

	p := s.Weather
	if p == nil {
		return nil
	}

	fmt.Fprintf(w, "\n%s\n%s\n\n", p.LocationName, p.LocationRegion)
	fmt.Fprintf(w, "%s  %s\n\n", p.Temperature, p.Description)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Real feel\t%s\tHumidity\t%s\n", p.RealFeel, p.Humidity)
	fmt.Fprintf(tw, "Wind\t%s %s\tPressure\t%s\n", p.WindSpeed, p.WindDirection, p.Pressure)
	fmt.Fprintf(tw, "UV index\t%s\tVisibility\t%s\n", p.UVIndex, p.Visibility)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(p.Forecast) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, card := range p.Forecast {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", card.Date, card.High, card.Low, card.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if p.Credit != nil {
		fmt.Fprintf(w, "\nPhoto by %s (%s) on Unsplash\n", p.Credit.Photographer, p.Credit.ProfileURL)
	}
	_, err := fmt.Fprintln(w)
	return err
}
