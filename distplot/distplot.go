/*
 * distplot.go, part of hubbardv.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package distplot plots histograms of the metal-ligand distances selected
// for each class of metal atoms.
package distplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bins is the number of bins in each histogram.
const Bins = 20

// translucent, so overlapping histograms can be seen.
var palette = []color.Color{
	color.NRGBA{R: 200, G: 30, B: 30, A: 140},
	color.NRGBA{R: 30, G: 60, B: 200, A: 140},
	color.NRGBA{R: 30, G: 160, B: 60, A: 140},
	color.NRGBA{R: 220, G: 140, B: 0, A: 140},
}

// Histogram plots one histogram per class, in the order given by classes, with
// the distances in dists. The format (png, svg, pdf...) is taken from the extension
// of filename. Classes without distances are skipped. It returns an error if no
// class has distances.
func Histogram(dists map[string][]float64, classes []string, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "d (A)"
	p.Y.Label.Text = "Pairs"
	p.Add(plotter.NewGrid())
	plotted := 0
	for _, c := range classes {
		d := dists[c]
		if len(d) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(d), Bins)
		if err != nil {
			return fmt.Errorf("distplot: histogram for %s: %w", c, err)
		}
		h.FillColor = palette[plotted%len(palette)]
		p.Add(h)
		p.Legend.Add(c, h)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("distplot: no distances to plot")
	}
	p.Legend.Top = true
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("distplot: saving %s: %w", filename, err)
	}
	return nil
}
