package charts

import (
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/BIOMagPlot/src/logging"
	"github.com/iafilius/BIOMagPlot/src/magdata"
)

const (
	OverlayTitle    = "BIS Magnetic Field Components"
	DifferenceTitle = "BIS-BOS Magnetic Field Differences"
)

var (
	colorPink    = drawing.Color{R: 255, G: 192, B: 203, A: 255}
	colorOrange  = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorCyan    = drawing.Color{R: 0, G: 255, B: 255, A: 255}
	colorMagenta = drawing.Color{R: 255, G: 0, B: 255, A: 255}
	colorGray    = drawing.Color{R: 128, G: 128, B: 128, A: 255}
)

// Channel colors are fixed; each chart has its own palette.
var overlayPalette = map[magdata.Channel]drawing.Color{
	magdata.BISX:    drawing.ColorRed,
	magdata.BISY:    drawing.ColorYellow,
	magdata.BISZ:    colorPink,
	magdata.BIST:    drawing.ColorGreen,
	magdata.BOSX:    colorOrange,
	magdata.BOSY:    drawing.ColorPurple,
	magdata.BOSZ:    drawing.ColorBlue,
	magdata.BOST:    colorCyan,
	magdata.BISBOSX: colorMagenta,
	magdata.BISBOSY: colorGray,
	magdata.BISBOSZ: drawing.ColorBlack,
	magdata.BISBOST: drawing.ColorLime,
}

var differencePalette = map[magdata.Channel]drawing.Color{
	magdata.BISBOSX: drawing.ColorRed,
	magdata.BISBOSY: drawing.ColorYellow,
	magdata.BISBOSZ: drawing.ColorBlue,
	magdata.BISBOST: drawing.ColorBlack,
}

func traces(ds *magdata.Dataset, channels []magdata.Channel, palette map[magdata.Channel]drawing.Color) []Trace {
	out := make([]Trace, 0, len(channels))
	for _, ch := range channels {
		out = append(out, Trace{Label: ch.String(), Color: palette[ch], Values: ds.Column(ch)})
	}
	return out
}

// RenderOverlay plots all twelve channels on one chart and writes it to path.
func RenderOverlay(ds *magdata.Dataset, path string, opts Options, log *logging.Logger) error {
	log.Infof("Plotting data and saving to %s", path)
	opts.Title = OverlayTitle
	return plotChannels(ds, magdata.AllChannels, overlayPalette, path, opts, log)
}

// RenderDifferences plots the four BIS-BOS difference channels and writes it to path.
func RenderDifferences(ds *magdata.Dataset, path string, opts Options, log *logging.Logger) error {
	log.Infof("Plotting differences and saving to %s", path)
	opts.Title = DifferenceTitle
	return plotChannels(ds, magdata.DifferenceChannels, differencePalette, path, opts, log)
}

func plotChannels(ds *magdata.Dataset, channels []magdata.Channel, palette map[magdata.Channel]drawing.Color, path string, opts Options, log *logging.Logger) error {
	defer log.TimeTrack(time.Now(), "plot "+path)
	if _, err := encoderFor(path); err != nil {
		return err
	}
	if ds == nil {
		ds = &magdata.Dataset{}
	}
	trs := traces(ds, channels, palette)
	if log.DebugEnabled() {
		for _, tr := range trs {
			log.Debugf("%s data: %v...", tr.Label, head(tr.Values, 5))
		}
	}
	if ds.Len() == 0 {
		log.Warnf("No data rows; writing placeholder to %s", path)
	}
	img, err := Render(ds.Times, trs, opts)
	if err != nil {
		return err
	}
	if err := Save(path, img); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

func head(vs []float64, n int) []float64 {
	if len(vs) < n {
		return vs
	}
	return vs[:n]
}
