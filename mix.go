package pcm

import "gonum.org/v1/gonum/floats"

// Channel remixing between speaker configurations.
//
// Coefficient matrices are derived once at init from the angular speaker
// positions of each configuration. Downmixing folds every source speaker
// into its nearest destination speaker (ties contribute to each), then
// normalizes each destination by its number of spatial contributors.
// Upmixing feeds each destination speaker from its nearest source speaker
// at unity, splitting 1/k across k equidistant sources. The LFE channel
// never participates in spatial placement: it maps at unity when both
// configurations carry one, folds at unity into every spatial channel when
// the destination drops it, and is silent when the destination introduces
// it.

type speaker struct {
	angle float64 // degrees clockwise from front center
	lfe   bool
}

// layouts[n] is the speaker configuration for n channels, in frame
// channel order.
var layouts = [MaxChannels + 1][]speaker{
	Mono:       {{angle: 0}},
	Stereo:     {{angle: -90}, {angle: 90}},
	Surround30: {{angle: -90}, {angle: 90}, {angle: 0}},
	Surround40: {{angle: -30}, {angle: 30}, {angle: -110}, {angle: 110}},
	Surround50: {{angle: -30}, {angle: 30}, {angle: -110}, {angle: 110}, {angle: 0}},
	Surround51: {{angle: -30}, {angle: 30}, {angle: -110}, {angle: 110}, {angle: 0}, {lfe: true}},
	Surround61: {{angle: -30}, {angle: 30}, {angle: -110}, {angle: 110}, {angle: 0}, {lfe: true}, {angle: 180}},
	Surround71: {{angle: -30}, {angle: 30}, {angle: -150}, {angle: 150}, {angle: 0}, {lfe: true}, {angle: -110}, {angle: 110}},
}

// mixMatrix maps a source frame to a destination frame: row i holds the
// per-source-channel coefficients for destination channel i.
type mixMatrix struct {
	rows [][]float64
}

func (m *mixMatrix) dot(i int, src []float64) float64 {
	return floats.Dot(m.rows[i], src)
}

// mixTables[dst][src] is the remix matrix from src channels to dst
// channels, for 1 <= src, dst <= MaxChannels.
var mixTables [MaxChannels + 1][MaxChannels + 1]mixMatrix

func init() {
	for dst := 1; dst <= MaxChannels; dst++ {
		for src := 1; src <= MaxChannels; src++ {
			mixTables[dst][src] = buildMix(layouts[dst], layouts[src])
		}
	}

	// The full 7.1 to 5.1 fold keeps the fronts dominant instead of
	// dumping each side speaker into the nearest back speaker alone.
	mixTables[Surround51][Surround71] = mixMatrix{rows: [][]float64{
		{2.0 / 3.0, 0, 0, 0, 0, 0, 1.0 / 3.0, 0},
		{0, 2.0 / 3.0, 0, 0, 0, 0, 0, 1.0 / 3.0},
		{0, 0, 2.0 / 3.0, 0, 0, 0, 1.0 / 3.0, 0},
		{0, 0, 0, 2.0 / 3.0, 0, 0, 0, 1.0 / 3.0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
	}}
}

func angleDist(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	for d >= 360 {
		d -= 360
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// nearest returns the indices of the speakers in set closest to angle,
// skipping LFE entries.
func nearest(set []speaker, angle float64) []int {
	best := 361.0
	var idx []int
	for i, s := range set {
		if s.lfe {
			continue
		}
		d := angleDist(s.angle, angle)
		switch {
		case d < best-1e-9:
			best = d
			idx = idx[:0]
			idx = append(idx, i)
		case d < best+1e-9:
			idx = append(idx, i)
		}
	}
	return idx
}

func buildMix(dst, src []speaker) mixMatrix {
	rows := make([][]float64, len(dst))
	for i := range rows {
		rows[i] = make([]float64, len(src))
	}

	if len(src) == 1 {
		// Mono duplicates into every destination channel, LFE included.
		for i := range dst {
			rows[i][0] = 1
		}
		return mixMatrix{rows: rows}
	}

	srcLFE, dstLFE := -1, -1
	for i, s := range src {
		if s.lfe {
			srcLFE = i
		}
	}
	for i, s := range dst {
		if s.lfe {
			dstLFE = i
		}
	}

	if len(dst) < len(src) {
		// Downmix: place each source, then normalize per destination.
		contrib := make([]int, len(dst))
		for j, s := range src {
			if s.lfe {
				continue
			}
			for _, i := range nearest(dst, s.angle) {
				rows[i][j] = 1
				contrib[i]++
			}
		}
		for i := range dst {
			if contrib[i] == 0 {
				continue
			}
			floats.Scale(1/float64(contrib[i]), rows[i])
		}
	} else {
		// Upmix or same width: feed each destination from its nearest
		// source, splitting across equidistant sources.
		for i, d := range dst {
			if d.lfe {
				continue
			}
			from := nearest(src, d.angle)
			for _, j := range from {
				rows[i][j] = 1 / float64(len(from))
			}
		}
	}

	switch {
	case srcLFE >= 0 && dstLFE >= 0:
		rows[dstLFE][srcLFE] = 1
	case srcLFE >= 0:
		// Destination has no LFE: fold it at unity into every
		// spatial channel.
		for i := range dst {
			rows[i][srcLFE] = 1
		}
	}
	return mixMatrix{rows: rows}
}
